package ticket

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

// MemoryStore implements Store without a remote backend. It serves offline
// deployments (no Firebase project configured) and tests. Document ids are
// random, like Firestore's.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]domain.Ticket
	watchSeq int
	watchers map[int]chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     map[string]domain.Ticket{},
		watchers: map[int]chan struct{}{},
	}
}

func (s *MemoryStore) Create(ctx context.Context, text string) error {
	s.mu.Lock()
	id := uuid.NewString()
	s.docs[id] = domain.Ticket{
		ID:        id,
		Text:      text,
		Status:    domain.TicketPending,
		CreatedAt: time.Now(),
	}
	s.mu.Unlock()

	s.broadcast()
	return nil
}

func (s *MemoryStore) SetStatus(ctx context.Context, id string, st domain.TicketStatus) error {
	s.mu.Lock()
	t, ok := s.docs[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	if !t.Status.CanAdvanceTo(st) {
		s.mu.Unlock()
		return fmt.Errorf("ticket %s: %s → %s: %w", id, t.Status, st, domain.ErrInvalidTransition)
	}
	t.Status = st
	s.docs[id] = t
	s.mu.Unlock()

	s.broadcast()
	return nil
}

// Listen delivers the current list immediately, then again after every
// mutation, until ctx is done.
func (s *MemoryStore) Listen(ctx context.Context, fn func([]domain.Ticket)) error {
	s.mu.Lock()
	s.watchSeq++
	id := s.watchSeq
	ch := make(chan struct{}, 1)
	s.watchers[id] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}()

	fn(s.snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
			fn(s.snapshot())
		}
	}
}

func (s *MemoryStore) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
			// A wakeup is already queued; the watcher reads fresh state.
		}
	}
}

func (s *MemoryStore) snapshot() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ticket, 0, len(s.docs))
	for _, t := range s.docs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Health always succeeds; there is no remote to lose.
func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}
