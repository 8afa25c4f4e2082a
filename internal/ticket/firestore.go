package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/metrics"
)

// FirestoreStore keeps tickets in a Firestore collection. Documents carry
// {text, status, createdAt} with a server-assigned creation timestamp.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        *slog.Logger
}

func NewFirestoreStore(client *firestore.Client, collection string, log *slog.Logger) *FirestoreStore {
	if log == nil {
		log = slog.Default()
	}
	return &FirestoreStore{client: client, collection: collection, log: log}
}

func (s *FirestoreStore) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

// Create appends a pending ticket. The document id and createdAt are
// assigned by Firestore and arrive with the next live snapshot.
func (s *FirestoreStore) Create(ctx context.Context, text string) error {
	_, _, err := s.col().Add(ctx, map[string]any{
		"text":      text,
		"status":    string(domain.TicketPending),
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		metrics.TicketSyncErrors.Inc()
		return fmt.Errorf("%w: create: %v", ErrSync, err)
	}
	return nil
}

// SetStatus patches only the status field. The current status is read in
// the same transaction so a concurrent writer cannot move the ticket
// backward underneath us.
func (s *FirestoreStore) SetStatus(ctx context.Context, id string, st domain.TicketStatus) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := s.col().Doc(id)
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		var t domain.Ticket
		if err := doc.DataTo(&t); err != nil {
			return err
		}
		if !t.Status.CanAdvanceTo(st) {
			return fmt.Errorf("ticket %s: %s → %s: %w", id, t.Status, st, domain.ErrInvalidTransition)
		}
		return tx.Update(ref, []firestore.Update{{Path: "status", Value: string(st)}})
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidTransition):
		return err
	case status.Code(err) == codes.NotFound:
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	default:
		metrics.TicketSyncErrors.Inc()
		return fmt.Errorf("%w: set status: %v", ErrSync, err)
	}
}

// Listen delivers the full ticket list, newest first, on every remote
// change until ctx is done.
func (s *FirestoreStore) Listen(ctx context.Context, fn func([]domain.Ticket)) error {
	it := s.col().Query.OrderBy("createdAt", firestore.Desc).Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return ctx.Err()
			}
			metrics.TicketSyncErrors.Inc()
			return fmt.Errorf("%w: listen: %v", ErrSync, err)
		}
		docs, err := snap.Documents.GetAll()
		if err != nil {
			metrics.TicketSyncErrors.Inc()
			return fmt.Errorf("%w: listen: %v", ErrSync, err)
		}
		tickets := make([]domain.Ticket, 0, len(docs))
		for _, doc := range docs {
			var t domain.Ticket
			if err := doc.DataTo(&t); err != nil {
				// A just-created document may still carry an unresolved
				// server timestamp; it arrives complete in the next snapshot.
				s.log.Warn("skipping undecodable ticket", "id", doc.Ref.ID, "err", err)
				continue
			}
			t.ID = doc.Ref.ID
			tickets = append(tickets, t)
		}
		fn(tickets)
	}
}

// Health probes the collection with a single-document read.
func (s *FirestoreStore) Health(ctx context.Context) error {
	_, err := s.col().Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}
