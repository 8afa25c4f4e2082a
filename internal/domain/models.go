package domain

import "time"

// Enumerations
const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderPaid      OrderStatus = "paid"

	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"

	ServiceDineIn   ServiceType = "dine-in"
	ServiceTakeout  ServiceType = "takeout"
	ServiceDelivery ServiceType = "delivery"

	TicketPending   TicketStatus = "pending"
	TicketInKitchen TicketStatus = "in-kitchen"
	TicketReady     TicketStatus = "ready"
	TicketDelivered TicketStatus = "delivered"
)

type OrderStatus string
type PaymentMethod string
type ServiceType string
type TicketStatus string

// Money is an amount in cents. Prices never use floats.
type Money int64

type Product struct {
	ID       string
	Name     string
	Price    Money
	Category string
	IsFree   bool
}

// OrderItem snapshots the product name and price at the time the item is
// added, so later catalog edits do not rewrite existing orders.
type OrderItem struct {
	ProductID   string
	ProductName string
	Price       Money
	Quantity    int
	IsFree      bool
}

// Subtotal is the revenue contribution of the line. Free lines contribute
// zero regardless of their nominal price.
func (it OrderItem) Subtotal() Money {
	if it.IsFree {
		return 0
	}
	return it.Price * Money(it.Quantity)
}

type Order struct {
	ID            string
	Items         []OrderItem
	Total         Money
	Status        OrderStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	TableNumber   *int
	ServiceType   ServiceType
}

type Expense struct {
	ID      string
	Concept string
	Amount  Money
	Date    time.Time
}

// ProductSales is one row of the daily per-product breakdown.
type ProductSales struct {
	Quantity int
	Total    Money
}

// DailySummary is derived from paid orders and expenses of a single local
// day. It is recomputed on demand and never stored.
type DailySummary struct {
	TotalCash      Money
	TotalTransfer  Money
	TotalExpenses  Money
	TotalSales     Money
	SalesByProduct map[string]ProductSales
	Date           time.Time
}

// Ticket is a free-text kitchen work item living in the remote document
// store. The identifier and creation timestamp are assigned by the store.
type Ticket struct {
	ID        string       `firestore:"-"`
	Text      string       `firestore:"text"`
	Status    TicketStatus `firestore:"status"`
	CreatedAt time.Time    `firestore:"createdAt"`
}

// Promotion describes the standing offer for one day of the week.
type Promotion struct {
	Day       string
	FreeItems []string
	Condition string
}
