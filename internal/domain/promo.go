package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPromoInactive     = errors.New("promo code is not active")
	ErrPromoExpired      = errors.New("promo code has expired")
	ErrPromoBelowMinimum = errors.New("order total is below the promo code minimum")
)

type PromoCode struct {
	ID          int             `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Percent     int             `json:"percent"`
	MinTotal    decimal.Decimal `json:"min_total"`
	Active      bool            `json:"active"`
	ExpiresAt   time.Time       `json:"expires_at"`
	UsedCount   int             `json:"used_count"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CheckAt reports why the code cannot be applied to the given total at the
// given moment, or nil when it can.
func (p *PromoCode) CheckAt(now time.Time, total decimal.Decimal) error {
	if !p.Active {
		return ErrPromoInactive
	}
	if !p.ExpiresAt.After(now) {
		return ErrPromoExpired
	}
	if total.LessThan(p.MinTotal) {
		return ErrPromoBelowMinimum
	}
	return nil
}

// ValidAt reports whether the code itself is live, ignoring order totals.
func (p *PromoCode) ValidAt(now time.Time) bool {
	return p.Active && p.ExpiresAt.After(now)
}

// Apply returns the total with the code's percent discount taken off,
// rounded to two decimal places.
func (p *PromoCode) Apply(total decimal.Decimal) decimal.Decimal {
	keep := decimal.NewFromInt(int64(100 - p.Percent))
	return total.Mul(keep).Div(decimal.NewFromInt(100)).Round(2)
}
