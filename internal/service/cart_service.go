package service

import (
	"errors"

	"resto-backend/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) GetCart(userID int) (*domain.Cart, error) {
	return s.repo.GetCartByUser(userID)
}

func (s *CartService) AddItem(userID, dishID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.repo.GetCartByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddCartItem(cart.ID, dishID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetCartByUser(userID)
}

// SetQuantity pins the (cart, dish) row to an exact quantity. Zero removes
// the row, matching the "removing the last unit deletes the row" rule.
func (s *CartService) SetQuantity(userID, dishID, quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(userID, dishID)
	}
	cart, err := s.repo.GetCartByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetCartItemQuantity(cart.ID, dishID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetCartByUser(userID)
}

func (s *CartService) RemoveItem(userID, dishID int) (*domain.Cart, error) {
	cart, err := s.repo.GetCartByUser(userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.RemoveCartItem(cart.ID, dishID); err != nil {
		return nil, err
	}
	return s.repo.GetCartByUser(userID)
}

var _ CartServiceInterface = (*CartService)(nil)
