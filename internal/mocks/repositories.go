// Package mocks holds testify mocks for the repository and service
// interfaces used across the unit tests.
package mocks

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"resto-backend/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock, target interface{ AssertExpectations(mock.TestingT) bool }) {
	m.Test(t)
	t.Cleanup(func() { target.AssertExpectations(t) })
}

type CatalogRepository struct{ mock.Mock }

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *CatalogRepository) CreateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CatalogRepository) UpdateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CatalogRepository) ListCategories(activeOnly bool) ([]domain.Category, error) {
	args := m.Called(activeOnly)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *CatalogRepository) GetCategoryBySlug(slug string) (*domain.Category, error) {
	args := m.Called(slug)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *CatalogRepository) CreateDish(d *domain.Dish) error {
	return m.Called(d).Error(0)
}

func (m *CatalogRepository) UpdateDish(d *domain.Dish) error {
	return m.Called(d).Error(0)
}

func (m *CatalogRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogRepository) GetDishBySlug(slug string) (*domain.Dish, error) {
	args := m.Called(slug)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogRepository) ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error) {
	args := m.Called(categoryID, activeOnly)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *CatalogRepository) DeleteDish(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type CartRepository struct{ mock.Mock }

func NewCartRepository(t testingT) *CartRepository {
	m := &CartRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *CartRepository) GetCartByUser(userID int) (*domain.Cart, error) {
	args := m.Called(userID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartRepository) AddCartItem(cartID, dishID, quantity int) error {
	return m.Called(cartID, dishID, quantity).Error(0)
}

func (m *CartRepository) SetCartItemQuantity(cartID, dishID, quantity int) error {
	return m.Called(cartID, dishID, quantity).Error(0)
}

func (m *CartRepository) RemoveCartItem(cartID, dishID int) (int64, error) {
	args := m.Called(cartID, dishID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct{ mock.Mock }

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderRepository) CreateOrderFromCart(order *domain.Order, cartID int) error {
	return m.Called(order, cartID).Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	args := m.Called(userID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID int, from, to domain.OrderStatus) error {
	return m.Called(orderID, from, to).Error(0)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type ReviewRepository struct{ mock.Mock }

func NewReviewRepository(t testingT) *ReviewRepository {
	m := &ReviewRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *ReviewRepository) GetExistingReviewID(userID, dishID int) (int, error) {
	args := m.Called(userID, dishID)
	return args.Int(0), args.Error(1)
}

func (m *ReviewRepository) InsertReview(review *domain.Review) error {
	return m.Called(review).Error(0)
}

func (m *ReviewRepository) UpdateReview(id int, review *domain.Review) error {
	return m.Called(id, review).Error(0)
}

func (m *ReviewRepository) ListDishReviews(dishID int) ([]domain.Review, error) {
	args := m.Called(dishID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *ReviewRepository) DishRating(dishID int) (float64, int, error) {
	args := m.Called(dishID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func (m *ReviewRepository) RefreshDishRating(dishID int) error {
	return m.Called(dishID).Error(0)
}

type FavoriteRepository struct{ mock.Mock }

func NewFavoriteRepository(t testingT) *FavoriteRepository {
	m := &FavoriteRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *FavoriteRepository) InsertFavorite(userID, dishID int) error {
	return m.Called(userID, dishID).Error(0)
}

func (m *FavoriteRepository) DeleteFavorite(userID, dishID int) (int64, error) {
	args := m.Called(userID, dishID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FavoriteRepository) HasFavorite(userID, dishID int) (bool, error) {
	args := m.Called(userID, dishID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) ListFavorites(userID int) ([]domain.Dish, error) {
	args := m.Called(userID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

type AccountRepository struct{ mock.Mock }

func NewAccountRepository(t testingT) *AccountRepository {
	m := &AccountRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *AccountRepository) RegisterUser(user *domain.User, profile *domain.Profile) error {
	return m.Called(user, profile).Error(0)
}

func (m *AccountRepository) GetUser(userID int) (*domain.User, error) {
	args := m.Called(userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *AccountRepository) GetProfile(userID int) (*domain.Profile, error) {
	args := m.Called(userID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *AccountRepository) UpdateProfile(p *domain.Profile) error {
	return m.Called(p).Error(0)
}

type PromoRepository struct{ mock.Mock }

func NewPromoRepository(t testingT) *PromoRepository {
	m := &PromoRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *PromoRepository) CreatePromoCode(p *domain.PromoCode) error {
	return m.Called(p).Error(0)
}

func (m *PromoRepository) GetPromoCode(code string) (*domain.PromoCode, error) {
	args := m.Called(code)
	var promo *domain.PromoCode
	if args.Get(0) != nil {
		promo = args.Get(0).(*domain.PromoCode)
	}
	return promo, args.Error(1)
}

func (m *PromoRepository) RedeemPromoCode(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, error) {
	args := m.Called(code, total, now)
	var promo *domain.PromoCode
	if args.Get(0) != nil {
		promo = args.Get(0).(*domain.PromoCode)
	}
	return promo, args.Error(1)
}
