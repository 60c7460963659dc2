package storage

import (
	"database/sql"

	"resto-backend/internal/domain"
)

// effectivePrice mirrors domain.Dish.EffectivePrice for use inside queries.
const effectivePrice = `
	CASE WHEN d.discount_on AND d.discount_price IS NOT NULL
		THEN d.discount_price ELSE d.price END`

func (r *PostgresRepository) GetCartByUser(userID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.DB.QueryRow(`
		SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1
	`, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT ci.id, ci.cart_id, ci.dish_id, d.name, `+effectivePrice+`, ci.quantity, ci.added_at
		FROM cart_items ci
		JOIN dishes d ON ci.dish_id = d.id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at
	`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.DishID, &item.DishName,
			&item.UnitPrice, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return &cart, rows.Err()
}

// AddCartItem inserts the item or bumps the quantity of an existing
// (cart, dish) row.
func (r *PostgresRepository) AddCartItem(cartID, dishID, quantity int) error {
	_, err := r.DB.Exec(`
		INSERT INTO cart_items (cart_id, dish_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, dish_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, dishID, quantity)
	return err
}

func (r *PostgresRepository) SetCartItemQuantity(cartID, dishID, quantity int) error {
	result, err := r.DB.Exec(`
		UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND dish_id = $3
	`, quantity, cartID, dishID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) RemoveCartItem(cartID, dishID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM cart_items WHERE cart_id = $1 AND dish_id = $2", cartID, dishID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
