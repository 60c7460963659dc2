package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"resto-backend/internal/domain"
)

func (r *PostgresRepository) CreatePromoCode(p *domain.PromoCode) error {
	err := r.DB.QueryRow(`
		INSERT INTO promo_codes (code, description, percent, min_total, active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, used_count, created_at
	`, p.Code, p.Description, p.Percent, p.MinTotal, p.Active, p.ExpiresAt).
		Scan(&p.ID, &p.UsedCount, &p.CreatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) GetPromoCode(code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := r.DB.QueryRow(`
		SELECT id, code, description, percent, min_total, active, expires_at, used_count, created_at
		FROM promo_codes WHERE code = $1
	`, code).Scan(&p.ID, &p.Code, &p.Description, &p.Percent, &p.MinTotal,
		&p.Active, &p.ExpiresAt, &p.UsedCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RedeemPromoCode validates the code against the order total and increments
// its usage counter atomically. The row lock makes concurrent redemptions
// serialize instead of racing past the validity checks.
func (r *PostgresRepository) RedeemPromoCode(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var p domain.PromoCode
	if err := tx.QueryRow(`
		SELECT id, code, description, percent, min_total, active, expires_at, used_count, created_at
		FROM promo_codes
		WHERE code = $1
		FOR UPDATE
	`, code).Scan(&p.ID, &p.Code, &p.Description, &p.Percent, &p.MinTotal,
		&p.Active, &p.ExpiresAt, &p.UsedCount, &p.CreatedAt); err != nil {
		return nil, err
	}

	if err := p.CheckAt(now, total); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(`
		UPDATE promo_codes SET used_count = used_count + 1 WHERE id = $1
		RETURNING used_count
	`, p.ID).Scan(&p.UsedCount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}
