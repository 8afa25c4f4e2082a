package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to preparing", OrderPending, OrderPreparing, true},
		{"preparing to ready", OrderPreparing, OrderReady, true},
		{"pending skips to ready", OrderPending, OrderReady, true},
		{"ready back to pending", OrderReady, OrderPending, false},
		{"preparing back to pending", OrderPreparing, OrderPending, false},
		{"same status", OrderPreparing, OrderPreparing, false},
		{"paid only via payment", OrderReady, OrderPaid, false},
		{"paid is terminal", OrderPaid, OrderPending, false},
		{"unknown target", OrderPending, OrderStatus("cooked"), false},
		{"unknown source", OrderStatus(""), OrderPreparing, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestTicketStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{"pending to kitchen", TicketPending, TicketInKitchen, true},
		{"kitchen to ready", TicketInKitchen, TicketReady, true},
		{"ready to delivered", TicketReady, TicketDelivered, true},
		{"pending straight to delivered", TicketPending, TicketDelivered, true},
		{"delivered back to pending", TicketDelivered, TicketPending, false},
		{"ready back to kitchen", TicketReady, TicketInKitchen, false},
		{"same status", TicketReady, TicketReady, false},
		{"unknown status", TicketPending, TicketStatus("lost"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestPaymentMethodValid(t *testing.T) {
	require.True(t, PaymentCash.Valid())
	require.True(t, PaymentTransfer.Valid())
	require.False(t, PaymentMethod("card").Valid())
	require.False(t, PaymentMethod("").Valid())
}
