package store

import (
	"time"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

// DailySummary aggregates today's paid orders and expenses. "Today" starts
// at local midnight of the store clock; yesterday's paid orders and
// expenses never show up.
func (s *Store) DailySummary() domain.DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sum := domain.DailySummary{
		Date:           midnight,
		SalesByProduct: map[string]domain.ProductSales{},
	}

	for _, o := range s.orders {
		if o.Status != domain.OrderPaid || o.CreatedAt.Before(midnight) {
			continue
		}
		switch o.PaymentMethod {
		case domain.PaymentCash:
			sum.TotalCash += o.Total
		case domain.PaymentTransfer:
			sum.TotalTransfer += o.Total
		}
		for _, it := range o.Items {
			// Free and promotional lines never reach the breakdown.
			if it.IsFree {
				continue
			}
			label := domain.SalesLabel(it.ProductName)
			row := sum.SalesByProduct[label]
			row.Quantity += it.Quantity
			row.Total += it.Price * domain.Money(it.Quantity)
			sum.SalesByProduct[label] = row
		}
	}

	for _, e := range s.expenses {
		if e.Date.Before(midnight) {
			continue
		}
		sum.TotalExpenses += e.Amount
	}

	sum.TotalSales = sum.TotalCash + sum.TotalTransfer
	return sum
}
