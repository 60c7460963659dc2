package storage

import (
	"database/sql"

	"resto-backend/internal/domain"
)

// CreateOrderFromCart persists the order with its item snapshots and clears
// the cart in a single transaction. Any failure rolls the whole thing back.
func (r *PostgresRepository) CreateOrderFromCart(order *domain.Order, cartID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, status, total, customer_name, phone, address, comment,
			payment_method, promo_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, order.UserID, order.Status, order.Total, order.CustomerName, order.Phone,
		order.Address, order.Comment, order.PaymentMethod, order.PromoCode).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, dish_id, dish_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, item.OrderID, item.DishID, item.DishName, item.Quantity, item.Price).
			Scan(&item.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			UPDATE dishes SET popularity = popularity + $1 WHERE id = $2
		`, item.Quantity, item.DishID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, user_id, status, total, customer_name, phone, address, comment,
			payment_method, promo_code, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.UserID, &order.Status, &order.Total,
		&order.CustomerName, &order.Phone, &order.Address, &order.Comment,
		&order.PaymentMethod, &order.PromoCode, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, dish_id, dish_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.DishName,
			&item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, status, total, customer_name, phone, address, comment,
			payment_method, promo_code, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.Total,
			&order.CustomerName, &order.Phone, &order.Address, &order.Comment,
			&order.PaymentMethod, &order.PromoCode, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus moves the order from one status to another. The current
// status is part of the predicate so a concurrent transition loses cleanly.
func (r *PostgresRepository) UpdateOrderStatus(orderID int, from, to domain.OrderStatus) error {
	result, err := r.DB.Exec(`
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2 AND status = $3
	`, to, orderID, from)
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

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
