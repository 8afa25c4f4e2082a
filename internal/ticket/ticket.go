// Package ticket maintains the live kitchen ticket feed on top of a remote
// document store. Tickets are free text with a four-step lifecycle and are
// independent of the structured order records.
package ticket

import (
	"context"
	"errors"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

// ErrSync marks a failed read or write against the remote store, so
// callers can tell connectivity problems apart from bad input.
var ErrSync = errors.New("ticket sync failed")

// Store is the document store behind the feed. Listen blocks until ctx is
// done, invoking fn with the full ordered ticket list (newest first) on
// every remote change. A write may not be reflected in the very next
// delivered snapshot.
type Store interface {
	Create(ctx context.Context, text string) error
	SetStatus(ctx context.Context, id string, status domain.TicketStatus) error
	Listen(ctx context.Context, fn func([]domain.Ticket)) error
}
