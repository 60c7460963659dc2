package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"resto-backend/internal/domain"
	"resto-backend/internal/service"
)

type CatalogServiceInterface struct{ mock.Mock }

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *CatalogServiceInterface) CreateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CatalogServiceInterface) UpdateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CatalogServiceInterface) ListCategories(activeOnly bool) ([]domain.Category, error) {
	args := m.Called(activeOnly)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *CatalogServiceInterface) GetCategoryBySlug(slug string) (*domain.Category, error) {
	args := m.Called(slug)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *CatalogServiceInterface) CreateDish(d *domain.Dish) error {
	return m.Called(d).Error(0)
}

func (m *CatalogServiceInterface) UpdateDish(d *domain.Dish) error {
	return m.Called(d).Error(0)
}

func (m *CatalogServiceInterface) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogServiceInterface) GetDishBySlug(slug string) (*domain.Dish, error) {
	args := m.Called(slug)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogServiceInterface) ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error) {
	args := m.Called(categoryID, activeOnly)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *CatalogServiceInterface) DeleteDish(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type CartServiceInterface struct{ mock.Mock }

func NewCartServiceInterface(t testingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *CartServiceInterface) GetCart(userID int) (*domain.Cart, error) {
	args := m.Called(userID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartServiceInterface) AddItem(userID, dishID, quantity int) (*domain.Cart, error) {
	args := m.Called(userID, dishID, quantity)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartServiceInterface) SetQuantity(userID, dishID, quantity int) (*domain.Cart, error) {
	args := m.Called(userID, dishID, quantity)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartServiceInterface) RemoveItem(userID, dishID int) (*domain.Cart, error) {
	args := m.Called(userID, dishID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

type OrderServiceInterface struct{ mock.Mock }

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderServiceInterface) Checkout(ctx context.Context, userID int, req service.CheckoutRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) Get(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) ListByUser(userID int) ([]domain.Order, error) {
	args := m.Called(userID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) UpdateStatus(orderID int, next domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(orderID, next)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

func (m *OrderServiceInterface) QRLink(orderID int) string {
	return m.Called(orderID).String(0)
}

type ReviewServiceInterface struct{ mock.Mock }

func NewReviewServiceInterface(t testingT) *ReviewServiceInterface {
	m := &ReviewServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *ReviewServiceInterface) CreateOrUpdate(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *ReviewServiceInterface) ListDishReviews(dishID int) ([]domain.Review, error) {
	args := m.Called(dishID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *ReviewServiceInterface) DishRating(ctx context.Context, dishID int) (float64, int, error) {
	args := m.Called(ctx, dishID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func (m *ReviewServiceInterface) ToggleFavorite(userID, dishID int) (bool, error) {
	args := m.Called(userID, dishID)
	return args.Bool(0), args.Error(1)
}

func (m *ReviewServiceInterface) ListFavorites(userID int) ([]domain.Dish, error) {
	args := m.Called(userID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

type AccountServiceInterface struct{ mock.Mock }

func NewAccountServiceInterface(t testingT) *AccountServiceInterface {
	m := &AccountServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *AccountServiceInterface) Register(username, email string) (*domain.User, *domain.Profile, error) {
	args := m.Called(username, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var profile *domain.Profile
	if args.Get(1) != nil {
		profile = args.Get(1).(*domain.Profile)
	}
	return user, profile, args.Error(2)
}

func (m *AccountServiceInterface) GetProfile(userID int) (*domain.Profile, error) {
	args := m.Called(userID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *AccountServiceInterface) UpdateProfile(p *domain.Profile) error {
	return m.Called(p).Error(0)
}

type PromoServiceInterface struct{ mock.Mock }

func NewPromoServiceInterface(t testingT) *PromoServiceInterface {
	m := &PromoServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *PromoServiceInterface) Create(p *domain.PromoCode) error {
	return m.Called(p).Error(0)
}

func (m *PromoServiceInterface) Preview(code string, total decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	args := m.Called(code, total, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *PromoServiceInterface) Redeem(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, decimal.Decimal, error) {
	args := m.Called(code, total, now)
	var promo *domain.PromoCode
	if args.Get(0) != nil {
		promo = args.Get(0).(*domain.PromoCode)
	}
	return promo, args.Get(1).(decimal.Decimal), args.Error(2)
}
