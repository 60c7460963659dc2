package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo enforces the single forward path
// new -> confirmed -> preparing -> ready -> completed, with cancellation
// allowed from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusNew:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusPreparing
	case StatusPreparing:
		return next == StatusReady
	case StatusReady:
		return next == StatusCompleted
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

type Order struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	CustomerName  string          `json:"customer_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Comment       string          `json:"comment"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PromoCode     string          `json:"promo_code,omitempty"`
	QRCode        string          `json:"qr_code,omitempty"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemsTotal recomputes the order total from its line items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

type OrderItem struct {
	ID       int    `json:"id"`
	OrderID  int    `json:"order_id"`
	DishID   int    `json:"dish_id"`
	DishName string `json:"dish_name"`
	Quantity int    `json:"quantity"`
	// Price is the effective dish price captured at checkout. It never
	// changes afterwards, even if the dish is repriced.
	Price decimal.Decimal `json:"price"`
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
