package ticket

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

func newTestFeed(t *testing.T) (*Feed, *MemoryStore) {
	t.Helper()
	s := NewMemoryStore()
	return NewFeed(s, slog.New(slog.NewTextHandler(io.Discard, nil))), s
}

func recvSnapshot(t *testing.T, ch <-chan []domain.Ticket) []domain.Ticket {
	t.Helper()
	select {
	case tickets := <-ch:
		return tickets
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a ticket snapshot")
		return nil
	}
}

func TestFeedCreateDeliversLiveUpdate(t *testing.T) {
	feed, _ := newTestFeed(t)
	ctx := context.Background()

	ch := make(chan []domain.Ticket, 16)
	stop := feed.Subscribe(ctx, func(tickets []domain.Ticket) { ch <- tickets })
	defer stop()

	require.Empty(t, recvSnapshot(t, ch), "initial snapshot is empty")

	require.NoError(t, feed.Create(ctx, "3 tacos de pastor"))
	tickets := recvSnapshot(t, ch)
	require.Len(t, tickets, 1)
	require.Equal(t, "3 tacos de pastor", tickets[0].Text)
	require.Equal(t, domain.TicketPending, tickets[0].Status)
}

func TestFeedSetStatusDeliversOnlyThatChange(t *testing.T) {
	feed, _ := newTestFeed(t)
	ctx := context.Background()

	ch := make(chan []domain.Ticket, 16)
	stop := feed.Subscribe(ctx, func(tickets []domain.Ticket) { ch <- tickets })
	defer stop()

	recvSnapshot(t, ch)
	require.NoError(t, feed.Create(ctx, "mesa 2"))
	recvSnapshot(t, ch)
	require.NoError(t, feed.Create(ctx, "mesa 5"))

	var target, other domain.Ticket
	for _, tk := range recvSnapshot(t, ch) {
		if tk.Text == "mesa 2" {
			target = tk
		} else {
			other = tk
		}
	}
	require.NotEmpty(t, target.ID)

	require.NoError(t, feed.SetStatus(ctx, target.ID, domain.TicketReady))
	for _, tk := range recvSnapshot(t, ch) {
		switch tk.ID {
		case target.ID:
			require.Equal(t, domain.TicketReady, tk.Status)
		case other.ID:
			require.Equal(t, domain.TicketPending, tk.Status, "untouched tickets keep their status")
		}
	}
}

func TestFeedSubscriptionStops(t *testing.T) {
	feed, _ := newTestFeed(t)
	ctx := context.Background()

	ch := make(chan []domain.Ticket, 16)
	stop := feed.Subscribe(ctx, func(tickets []domain.Ticket) { ch <- tickets })
	recvSnapshot(t, ch)

	stop()
	stop() // cancelling twice is fine
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, feed.Create(ctx, "after cancel"))
	select {
	case <-ch:
		t.Fatal("cancelled subscription still delivered a snapshot")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFeedValidation(t *testing.T) {
	feed, _ := newTestFeed(t)
	ctx := context.Background()

	require.ErrorIs(t, feed.Create(ctx, ""), domain.ErrInvalidInput)
	require.ErrorIs(t, feed.SetStatus(ctx, "", domain.TicketReady), domain.ErrInvalidInput)
	require.ErrorIs(t, feed.SetStatus(ctx, "some-id", "lost"), domain.ErrInvalidInput)
}

func TestFeedPropagatesStoreErrors(t *testing.T) {
	feed, store := newTestFeed(t)
	ctx := context.Background()

	require.ErrorIs(t, feed.SetStatus(ctx, "missing", domain.TicketReady), domain.ErrNotFound)

	require.NoError(t, store.Create(ctx, "mesa 1"))
	id := store.snapshot()[0].ID
	require.NoError(t, feed.SetStatus(ctx, id, domain.TicketDelivered))
	require.ErrorIs(t, feed.SetStatus(ctx, id, domain.TicketInKitchen), domain.ErrInvalidTransition)
}
