package store

import (
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/promo"
)

// DailyPromotion returns the standing offer for the store clock's current
// day of the week.
func (s *Store) DailyPromotion() domain.Promotion {
	return promo.ForDay(s.Now())
}
