package domain

// Rank of each order status along the lifecycle. Paid is terminal.
var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderPreparing: 1,
	OrderReady:     2,
	OrderPaid:      3,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// moving forward. Skipping a step ahead is allowed; going backward is not.
// Paid is never reachable here: payment goes through the cashier path,
// which records the payment method at the same time.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	if next == OrderPaid {
		return false
	}
	return to > from
}

var ticketStatusRank = map[TicketStatus]int{
	TicketPending:   0,
	TicketInKitchen: 1,
	TicketReady:     2,
	TicketDelivered: 3,
}

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	_, ok := ticketStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next is a forward move.
func (s TicketStatus) CanAdvanceTo(next TicketStatus) bool {
	from, ok := ticketStatusRank[s]
	if !ok {
		return false
	}
	to, ok := ticketStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer
}
