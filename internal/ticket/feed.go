package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/metrics"
)

// Feed is the view-facing surface of the ticket subsystem: validated
// writes plus a cancellable live subscription.
type Feed struct {
	store Store
	log   *slog.Logger
}

func NewFeed(store Store, log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{store: store, log: log}
}

// Create submits a pending ticket. The id arrives with the next live
// update, not here.
func (f *Feed) Create(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("%w: ticket text is required", domain.ErrInvalidInput)
	}
	return f.store.Create(ctx, text)
}

// SetStatus advances a ticket. Unknown statuses are rejected before the
// remote store is touched; backward moves are rejected by the store.
func (f *Feed) SetStatus(ctx context.Context, id string, st domain.TicketStatus) error {
	if id == "" {
		return fmt.Errorf("%w: ticket id is required", domain.ErrInvalidInput)
	}
	if !st.Valid() {
		return fmt.Errorf("%w: unknown ticket status %q", domain.ErrInvalidInput, st)
	}
	return f.store.SetStatus(ctx, id, st)
}

// Subscribe starts a live subscription that invokes fn with the full
// ordered ticket list on every remote change. The returned stop func must
// be called when the subscriber goes away; it is safe to call twice.
func (f *Feed) Subscribe(ctx context.Context, fn func([]domain.Ticket)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		err := f.store.Listen(ctx, func(tickets []domain.Ticket) {
			metrics.TicketSnapshots.Inc()
			fn(tickets)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			f.log.Error("ticket subscription ended", "err", err)
		}
	}()
	return cancel
}
