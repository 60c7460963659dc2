package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"resto-backend/internal/domain"
)

type PromoService struct {
	repo PromoRepository
}

func NewPromoService(repo PromoRepository) *PromoService {
	return &PromoService{repo: repo}
}

func (s *PromoService) Create(p *domain.PromoCode) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if p.Code == "" {
		return fmt.Errorf("%w: promo code is required", ErrValidation)
	}
	if p.Percent < 1 || p.Percent > 100 {
		return fmt.Errorf("%w: discount percent must be between 1 and 100", ErrValidation)
	}
	if p.MinTotal.IsNegative() {
		return fmt.Errorf("%w: minimum order amount must not be negative", ErrValidation)
	}
	if p.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: expiry timestamp is required", ErrValidation)
	}
	return s.repo.CreatePromoCode(p)
}

// Preview reports the total after discount without consuming a redemption.
func (s *PromoService) Preview(code string, total decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	promo, err := s.repo.GetPromoCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return decimal.Zero, err
	}
	if err := promo.CheckAt(now, total); err != nil {
		return decimal.Zero, err
	}
	return promo.Apply(total), nil
}

// Redeem applies the code and increments its usage counter; the check and
// increment happen atomically in the repository.
func (s *PromoService) Redeem(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, decimal.Decimal, error) {
	promo, err := s.repo.RedeemPromoCode(strings.ToUpper(strings.TrimSpace(code)), total, now)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return promo, promo.Apply(total), nil
}

var _ PromoServiceInterface = (*PromoService)(nil)
