package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resto-backend/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("order status transition is not allowed")
	ErrInvalidPayment     = errors.New("unknown payment method")
	ErrMissingContactInfo = errors.New("customer name and phone are required")
)

type CheckoutRequest struct {
	CustomerName  string
	Phone         string
	Address       string
	Comment       string
	PaymentMethod domain.PaymentMethod
	PromoCode     string
}

type OrderService struct {
	repo   OrderRepository
	carts  CartRepository
	promos PromoRepository
	qr     QRGenerator
}

func NewOrderService(repo OrderRepository, carts CartRepository, promos PromoRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, carts: carts, promos: promos, qr: qr}
}

// Checkout snapshots the user's cart into a new order. The order, its items
// and the cart cleanup commit as one transaction in the repository; a promo
// code, when given, is redeemed first so an invalid code aborts the checkout
// before anything is written.
func (s *OrderService) Checkout(ctx context.Context, userID int, req CheckoutRequest) (*domain.Order, error) {
	if req.CustomerName == "" || req.Phone == "" {
		return nil, ErrMissingContactInfo
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentCash
	}
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}

	cart, err := s.carts.GetCartByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		UserID:        userID,
		Status:        domain.StatusNew,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Comment:       req.Comment,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			DishID:   item.DishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}
	order.Total = order.ItemsTotal()

	// Codes are stored uppercase; accept whatever casing the user typed, the
	// same way Preview and Redeem do.
	if code := strings.ToUpper(strings.TrimSpace(req.PromoCode)); code != "" {
		promo, err := s.promos.RedeemPromoCode(code, order.Total, time.Now())
		if err != nil {
			return nil, fmt.Errorf("promo code: %w", err)
		}
		order.Total = promo.Apply(order.Total)
		order.PromoCode = promo.Code
	}

	if err := s.repo.CreateOrderFromCart(order, cart.ID); err != nil {
		return nil, err
	}

	if s.qr != nil {
		if qr, err := s.qr.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}
	order.QRCode = s.QRLink(order.ID)

	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) ListByUser(userID int) ([]domain.Order, error) {
	orders, err := s.repo.ListOrdersByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].QRCode = s.QRLink(orders[i].ID)
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(orderID int, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, ErrUnknownStatus
	}
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	if err := s.repo.UpdateOrderStatus(orderID, order.Status, next); err != nil {
		// Zero rows means a concurrent transition got there first.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	order.Status = next
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qr != nil {
		if regenerated, err := s.qr.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
