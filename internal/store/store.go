package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/metrics"
)

// Store is the in-memory source of truth for products, orders, expenses and
// the opening cash drawer. It is constructed once at process start and
// handed to every consumer; all state is volatile and lost on restart.
//
// Mutations notify subscribed listeners after the internal lock is
// released, so a listener may read the store or cancel subscriptions from
// inside its callback. Re-entering a mutating operation from a listener is
// unsupported.
type Store struct {
	// Now is the store clock. Tests replace it with a fixed time.
	Now func() time.Time

	log *slog.Logger

	mu          sync.Mutex
	seq         int64
	products    []domain.Product
	orders      []domain.Order
	expenses    []domain.Expense
	initialCash domain.Money

	listenerSeq int
	listeners   map[int]func()
}

// New creates an empty store.
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		Now:       time.Now,
		log:       log,
		listeners: map[int]func(){},
	}
}

// Subscribe registers fn to run after every mutation. The returned cancel
// func is safe to call more than once and from inside a notification.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listenerSeq++
	id := s.listenerSeq
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// notify runs every listener from a snapshot taken under the lock, so the
// listener set may change while the callbacks run.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// Products returns a copy of the catalog in insertion order. Mutating the
// returned slice never touches store state.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// AddProduct appends a catalog entry. Free products get their price forced
// to zero.
func (s *Store) AddProduct(name string, price domain.Money, category string, isFree bool) (domain.Product, error) {
	if name == "" || category == "" {
		return domain.Product{}, fmt.Errorf("%w: name and category are required", domain.ErrInvalidInput)
	}
	if price < 0 {
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if isFree {
		price = 0
	}

	s.mu.Lock()
	p := domain.Product{
		ID:       s.nextID("PRD"),
		Name:     name,
		Price:    price,
		Category: category,
		IsFree:   isFree,
	}
	s.products = append(s.products, p)
	s.mu.Unlock()

	s.log.Debug("product added", "id", p.ID, "name", p.Name)
	s.notify()
	return p, nil
}

// ProductUpdate carries the fields of a partial product edit. Nil fields
// are left untouched.
type ProductUpdate struct {
	Name     *string
	Price    *domain.Money
	Category *string
	IsFree   *bool
}

// UpdateProduct merges upd into the product with the given id.
func (s *Store) UpdateProduct(id string, upd ProductUpdate) error {
	if upd.Name != nil && *upd.Name == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if upd.Price != nil && *upd.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	p := &s.products[idx]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.IsFree != nil {
		p.IsFree = *upd.IsFree
	}
	if p.IsFree {
		p.Price = 0
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteProduct removes a catalog entry. Existing order lines keep their
// snapshots.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddOrder creates a pending order from the given lines and returns its id.
// The item list must not be empty and every line needs a name and a
// positive quantity.
func (s *Store) AddOrder(items []domain.OrderItem, tableNumber *int, serviceType domain.ServiceType) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: order has no items", domain.ErrInvalidInput)
	}
	var total domain.Money
	for _, it := range items {
		if it.ProductName == "" {
			return "", fmt.Errorf("%w: item is missing a product name", domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return "", fmt.Errorf("%w: quantity must be positive for %q", domain.ErrInvalidInput, it.ProductName)
		}
		if it.Price < 0 {
			return "", fmt.Errorf("%w: price must not be negative for %q", domain.ErrInvalidInput, it.ProductName)
		}
		total += it.Subtotal()
	}

	s.mu.Lock()
	o := domain.Order{
		ID:          s.nextID("ORD"),
		Items:       append([]domain.OrderItem(nil), items...),
		Total:       total,
		Status:      domain.OrderPending,
		CreatedAt:   s.Now(),
		ServiceType: serviceType,
	}
	if tableNumber != nil {
		n := *tableNumber
		o.TableNumber = &n
	}
	s.orders = append(s.orders, o)
	id := o.ID
	s.mu.Unlock()

	metrics.OrdersCreated.Inc()
	s.log.Info("order created", "id", id, "items", len(items), "total", int64(total))
	s.notify()
	return id, nil
}

// Orders returns a deep copy of all orders, oldest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = copyOrder(o)
	}
	return out
}

func copyOrder(o domain.Order) domain.Order {
	c := o
	c.Items = append([]domain.OrderItem(nil), o.Items...)
	if o.TableNumber != nil {
		n := *o.TableNumber
		c.TableNumber = &n
	}
	return c
}

// UpdateOrderStatus advances an order along pending → preparing → ready.
// Backward moves are rejected, and paid is only reachable through
// RecordPayment.
func (s *Store) UpdateOrderStatus(id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidInput, status)
	}

	s.mu.Lock()
	o := s.findOrder(id)
	if o == nil {
		s.mu.Unlock()
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	if !o.Status.CanAdvanceTo(status) {
		cur := o.Status
		s.mu.Unlock()
		return fmt.Errorf("order %s: %s → %s: %w", id, cur, status, domain.ErrInvalidTransition)
	}
	o.Status = status
	s.mu.Unlock()

	s.notify()
	return nil
}

// RecordPayment marks the order paid with the given method, whatever its
// prior status. This is the cashier confirmation step.
func (s *Store) RecordPayment(id string, method domain.PaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, method)
	}

	s.mu.Lock()
	o := s.findOrder(id)
	if o == nil {
		s.mu.Unlock()
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	o.PaymentMethod = method
	o.Status = domain.OrderPaid
	total := o.Total
	s.mu.Unlock()

	metrics.Payments.WithLabelValues(string(method)).Inc()
	s.log.Info("payment recorded", "id", id, "method", string(method), "total", int64(total))
	s.notify()
	return nil
}

func (s *Store) findOrder(id string) *domain.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

// AddExpense appends a day-book entry timestamped with the store clock.
func (s *Store) AddExpense(concept string, amount domain.Money) (domain.Expense, error) {
	if concept == "" {
		return domain.Expense{}, fmt.Errorf("%w: concept is required", domain.ErrInvalidInput)
	}
	if amount < 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	e := domain.Expense{
		ID:      s.nextID("EXP"),
		Concept: concept,
		Amount:  amount,
		Date:    s.Now(),
	}
	s.expenses = append(s.expenses, e)
	s.mu.Unlock()

	metrics.ExpensesRecorded.Inc()
	s.notify()
	return e, nil
}

// Expenses returns a copy of all recorded expenses, oldest first.
func (s *Store) Expenses() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// SetInitialCash overwrites the day's opening drawer amount.
func (s *Store) SetInitialCash(amount domain.Money) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	s.initialCash = amount
	s.mu.Unlock()

	s.notify()
	return nil
}

// InitialCash reads the opening drawer amount.
func (s *Store) InitialCash() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialCash
}
