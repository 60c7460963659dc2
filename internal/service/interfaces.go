package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"resto-backend/internal/domain"
)

type CatalogRepository interface {
	CreateCategory(c *domain.Category) error
	UpdateCategory(c *domain.Category) error
	ListCategories(activeOnly bool) ([]domain.Category, error)
	GetCategoryBySlug(slug string) (*domain.Category, error)
	CreateDish(d *domain.Dish) error
	UpdateDish(d *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	GetDishBySlug(slug string) (*domain.Dish, error)
	ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error)
	DeleteDish(id int) (int64, error)
}

type CartRepository interface {
	GetCartByUser(userID int) (*domain.Cart, error)
	AddCartItem(cartID, dishID, quantity int) error
	SetCartItemQuantity(cartID, dishID, quantity int) error
	RemoveCartItem(cartID, dishID int) (int64, error)
}

type OrderRepository interface {
	CreateOrderFromCart(order *domain.Order, cartID int) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrdersByUser(userID int) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, from, to domain.OrderStatus) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type ReviewRepository interface {
	GetExistingReviewID(userID, dishID int) (int, error)
	InsertReview(review *domain.Review) error
	UpdateReview(id int, review *domain.Review) error
	ListDishReviews(dishID int) ([]domain.Review, error)
	DishRating(dishID int) (float64, int, error)
	RefreshDishRating(dishID int) error
}

type FavoriteRepository interface {
	InsertFavorite(userID, dishID int) error
	DeleteFavorite(userID, dishID int) (int64, error)
	HasFavorite(userID, dishID int) (bool, error)
	ListFavorites(userID int) ([]domain.Dish, error)
}

type AccountRepository interface {
	RegisterUser(user *domain.User, profile *domain.Profile) error
	GetUser(userID int) (*domain.User, error)
	GetProfile(userID int) (*domain.Profile, error)
	UpdateProfile(p *domain.Profile) error
}

type PromoRepository interface {
	CreatePromoCode(p *domain.PromoCode) error
	GetPromoCode(code string) (*domain.PromoCode, error)
	RedeemPromoCode(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, error)
}

type RatingCache interface {
	SetRating(ctx context.Context, dishID int, avg float64, count int) error
	GetRating(ctx context.Context, dishID int) (avg float64, count int, ok bool, err error)
	Invalidate(ctx context.Context, dishID int) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

type CatalogServiceInterface interface {
	CreateCategory(c *domain.Category) error
	UpdateCategory(c *domain.Category) error
	ListCategories(activeOnly bool) ([]domain.Category, error)
	GetCategoryBySlug(slug string) (*domain.Category, error)
	CreateDish(d *domain.Dish) error
	UpdateDish(d *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	GetDishBySlug(slug string) (*domain.Dish, error)
	ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error)
	DeleteDish(id int) (int64, error)
}

type CartServiceInterface interface {
	GetCart(userID int) (*domain.Cart, error)
	AddItem(userID, dishID, quantity int) (*domain.Cart, error)
	SetQuantity(userID, dishID, quantity int) (*domain.Cart, error)
	RemoveItem(userID, dishID int) (*domain.Cart, error)
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, userID int, req CheckoutRequest) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	ListByUser(userID int) ([]domain.Order, error)
	UpdateStatus(orderID int, next domain.OrderStatus) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type ReviewServiceInterface interface {
	CreateOrUpdate(ctx context.Context, review *domain.Review) error
	ListDishReviews(dishID int) ([]domain.Review, error)
	DishRating(ctx context.Context, dishID int) (float64, int, error)
	ToggleFavorite(userID, dishID int) (bool, error)
	ListFavorites(userID int) ([]domain.Dish, error)
}

type AccountServiceInterface interface {
	Register(username, email string) (*domain.User, *domain.Profile, error)
	GetProfile(userID int) (*domain.Profile, error)
	UpdateProfile(p *domain.Profile) error
}

type PromoServiceInterface interface {
	Create(p *domain.PromoCode) error
	Preview(code string, total decimal.Decimal, now time.Time) (decimal.Decimal, error)
	Redeem(code string, total decimal.Decimal, now time.Time) (*domain.PromoCode, decimal.Decimal, error)
}
