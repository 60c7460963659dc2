package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"resto-backend/internal/domain"
	"resto-backend/internal/mocks"
	"resto-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleCart() *domain.Cart {
	return &domain.Cart{
		ID:     5,
		UserID: 1,
		Items: []domain.CartItem{
			{DishID: 10, DishName: "Dish A", UnitPrice: money("500"), Quantity: 2},
			{DishID: 11, DishName: "Dish B", UnitPrice: money("300"), Quantity: 1},
		},
	}
}

func TestCatalogService_CreateDish(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repository)

	tests := []struct {
		name          string
		dish          *domain.Dish
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			dish: &domain.Dish{CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum", Price: money("450")},
			prepareMocks: func() {
				repository.On("CreateDish", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "error_missing_category",
			dish:          &domain.Dish{Name: "Tom Yum", Slug: "tom-yum", Price: money("450")},
			expectedError: service.ErrValidation,
		},
		{
			name:          "error_bad_slug",
			dish:          &domain.Dish{CategoryID: 1, Name: "Tom Yum", Slug: "Tom Yum!", Price: money("450")},
			expectedError: service.ErrInvalidSlug,
		},
		{
			name:          "error_non_positive_price",
			dish:          &domain.Dish{CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum", Price: decimal.Zero},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_discount_without_price",
			dish: &domain.Dish{
				CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum",
				Price: money("450"), DiscountOn: true,
			},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_discount_above_list_price",
			dish: func() *domain.Dish {
				discounted := money("500")
				return &domain.Dish{
					CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum",
					Price: money("450"), DiscountOn: true, DiscountPrice: &discounted,
				}
			}(),
			expectedError: service.ErrValidation,
		},
		{
			name: "error_spice_level_out_of_range",
			dish: &domain.Dish{
				CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum",
				Price: money("450"), SpiceLevel: 5,
			},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_slug_taken",
			dish: &domain.Dish{CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum", Price: money("450")},
			prepareMocks: func() {
				repository.On("CreateDish", mock.Anything).Return(domain.ErrDuplicate).Once()
			},
			expectedError: service.ErrSlugTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if testCase.prepareMocks != nil {
				testCase.prepareMocks()
			}
			err := svc.CreateDish(testCase.dish)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_CreateDish_DefaultsType(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repository)

	dish := &domain.Dish{CategoryID: 1, Name: "Tom Yum", Slug: "tom-yum", Price: money("450")}
	repository.On("CreateDish", dish).Return(nil).Once()

	require.NoError(t, svc.CreateDish(dish))
	assert.Equal(t, domain.DishTypeMain, dish.Type)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repository)

	repository.On("CreateCategory", mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.CreateCategory(&domain.Category{Name: "Soups", Slug: "soups"}))

	assert.ErrorIs(t, svc.CreateCategory(&domain.Category{Slug: "soups"}), service.ErrValidation)
	assert.ErrorIs(t, svc.CreateCategory(&domain.Category{Name: "Soups", Slug: "So ups"}), service.ErrInvalidSlug)
}

func TestCartService_AddItem(t *testing.T) {
	repository := mocks.NewCartRepository(t)
	svc := service.NewCartService(repository)

	tests := []struct {
		name          string
		quantity      int
		prepareMocks  func()
		expectedError error
	}{
		{
			name:     "success",
			quantity: 2,
			prepareMocks: func() {
				repository.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
				repository.On("AddCartItem", 5, 10, 2).Return(nil).Once()
				repository.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
			},
		},
		{
			name:          "error_zero_quantity",
			quantity:      0,
			expectedError: service.ErrInvalidQuantity,
		},
		{
			name:          "error_negative_quantity",
			quantity:      -3,
			expectedError: service.ErrInvalidQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if testCase.prepareMocks != nil {
				testCase.prepareMocks()
			}
			cart, err := svc.AddItem(1, 10, testCase.quantity)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, cart)
			} else {
				require.NoError(t, err)
				assert.True(t, cart.Total().Equal(money("1300")))
			}
		})
	}
}

func TestCartService_SetQuantity_ZeroRemoves(t *testing.T) {
	repository := mocks.NewCartRepository(t)
	svc := service.NewCartService(repository)

	repository.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
	repository.On("RemoveCartItem", 5, 10).Return(int64(1), nil).Once()
	repository.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()

	_, err := svc.SetQuantity(1, 10, 0)
	assert.NoError(t, err)

	_, err = svc.SetQuantity(1, 10, -1)
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func TestOrderService_Checkout(t *testing.T) {
	validRequest := service.CheckoutRequest{
		CustomerName:  "Ivan",
		Phone:         "+70000000000",
		Address:       "Lenina 1",
		PaymentMethod: domain.PaymentCard,
	}

	tests := []struct {
		name          string
		request       service.CheckoutRequest
		prepareMocks  func(orders *mocks.OrderRepository, carts *mocks.CartRepository, promos *mocks.PromoRepository, qr *mocks.QRGenerator)
		check         func(t *testing.T, order *domain.Order)
		expectedError error
	}{
		{
			name:    "success_without_promo",
			request: validRequest,
			prepareMocks: func(orders *mocks.OrderRepository, carts *mocks.CartRepository, promos *mocks.PromoRepository, qr *mocks.QRGenerator) {
				carts.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
				orders.On("CreateOrderFromCart", mock.Anything, 5).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 77
					}).
					Return(nil).Once()
				qr.On("Generate", 77).Return([]byte("png"), nil).Once()
				orders.On("SaveQRCode", 77, []byte("png")).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, 77, order.ID)
				assert.Equal(t, domain.StatusNew, order.Status)
				assert.Len(t, order.Items, 2)
				assert.True(t, order.Total.Equal(money("1300")), "got %s", order.Total)
				assert.True(t, order.Items[0].Price.Equal(money("500")))
			},
		},
		{
			name: "success_with_promo",
			request: func() service.CheckoutRequest {
				r := validRequest
				r.PromoCode = "SUMMER20"
				return r
			}(),
			prepareMocks: func(orders *mocks.OrderRepository, carts *mocks.CartRepository, promos *mocks.PromoRepository, qr *mocks.QRGenerator) {
				carts.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
				promos.On("RedeemPromoCode", "SUMMER20", mock.Anything, mock.Anything).
					Return(&domain.PromoCode{Code: "SUMMER20", Percent: 20}, nil).Once()
				orders.On("CreateOrderFromCart", mock.Anything, 5).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 78
					}).
					Return(nil).Once()
				qr.On("Generate", 78).Return([]byte("png"), nil).Once()
				orders.On("SaveQRCode", 78, []byte("png")).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.True(t, order.Total.Equal(money("1040")), "got %s", order.Total)
				assert.Equal(t, "SUMMER20", order.PromoCode)
			},
		},
		{
			name: "error_promo_rejected",
			request: func() service.CheckoutRequest {
				r := validRequest
				r.PromoCode = "EXPIRED"
				return r
			}(),
			prepareMocks: func(orders *mocks.OrderRepository, carts *mocks.CartRepository, promos *mocks.PromoRepository, qr *mocks.QRGenerator) {
				carts.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
				promos.On("RedeemPromoCode", "EXPIRED", mock.Anything, mock.Anything).
					Return(nil, domain.ErrPromoExpired).Once()
			},
			expectedError: domain.ErrPromoExpired,
		},
		{
			name:    "error_empty_cart",
			request: validRequest,
			prepareMocks: func(orders *mocks.OrderRepository, carts *mocks.CartRepository, promos *mocks.PromoRepository, qr *mocks.QRGenerator) {
				carts.On("GetCartByUser", 1).Return(&domain.Cart{ID: 5, UserID: 1}, nil).Once()
			},
			expectedError: service.ErrEmptyCart,
		},
		{
			name:          "error_missing_contact_info",
			request:       service.CheckoutRequest{PaymentMethod: domain.PaymentCash},
			expectedError: service.ErrMissingContactInfo,
		},
		{
			name: "error_unknown_payment_method",
			request: func() service.CheckoutRequest {
				r := validRequest
				r.PaymentMethod = "crypto"
				return r
			}(),
			expectedError: service.ErrInvalidPayment,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			carts := mocks.NewCartRepository(t)
			promos := mocks.NewPromoRepository(t)
			qr := mocks.NewQRGenerator(t)
			svc := service.NewOrderService(orders, carts, promos, qr)

			if testCase.prepareMocks != nil {
				testCase.prepareMocks(orders, carts, promos, qr)
			}

			order, err := svc.Checkout(context.Background(), 1, testCase.request)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			testCase.check(t, order)
		})
	}
}

func TestOrderService_Checkout_NormalizesPromoCode(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	carts := mocks.NewCartRepository(t)
	promos := mocks.NewPromoRepository(t)
	svc := service.NewOrderService(orders, carts, promos, nil)

	carts.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
	// The code is stored uppercase; lookups must match whatever casing the
	// user typed at checkout, same as Preview.
	promos.On("RedeemPromoCode", "SUMMER20", mock.Anything, mock.Anything).
		Return(&domain.PromoCode{Code: "SUMMER20", Percent: 20}, nil).Once()
	orders.On("CreateOrderFromCart", mock.Anything, 5).Return(nil).Once()

	order, err := svc.Checkout(context.Background(), 1, service.CheckoutRequest{
		CustomerName: "Ivan",
		Phone:        "+70000000000",
		PromoCode:    " summer20 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER20", order.PromoCode)
	assert.True(t, order.Total.Equal(money("1040")))
}

func TestOrderService_Checkout_DefaultsToCash(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	carts := mocks.NewCartRepository(t)
	svc := service.NewOrderService(orders, carts, mocks.NewPromoRepository(t), nil)

	carts.On("GetCartByUser", 1).Return(sampleCart(), nil).Once()
	orders.On("CreateOrderFromCart", mock.Anything, 5).Return(nil).Once()

	order, err := svc.Checkout(context.Background(), 1, service.CheckoutRequest{
		CustomerName: "Ivan",
		Phone:        "+70000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCash, order.PaymentMethod)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		next          domain.OrderStatus
		prepareMocks  func(orders *mocks.OrderRepository)
		expectedError error
	}{
		{
			name: "success_confirm_new_order",
			next: domain.StatusConfirmed,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusNew}, nil).Once()
				orders.On("UpdateOrderStatus", 77, domain.StatusNew, domain.StatusConfirmed).Return(nil).Once()
			},
		},
		{
			name: "success_cancel_preparing_order",
			next: domain.StatusCancelled,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusPreparing}, nil).Once()
				orders.On("UpdateOrderStatus", 77, domain.StatusPreparing, domain.StatusCancelled).Return(nil).Once()
			},
		},
		{
			name:          "error_unknown_status",
			next:          "shipped",
			expectedError: service.ErrUnknownStatus,
		},
		{
			name: "error_skipping_a_step",
			next: domain.StatusReady,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusNew}, nil).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name: "error_leaving_terminal_status",
			next: domain.StatusCancelled,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusCompleted}, nil).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name: "error_concurrent_transition",
			next: domain.StatusConfirmed,
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusNew}, nil).Once()
				orders.On("UpdateOrderStatus", 77, domain.StatusNew, domain.StatusConfirmed).Return(sql.ErrNoRows).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			svc := service.NewOrderService(orders, mocks.NewCartRepository(t), mocks.NewPromoRepository(t), nil)

			if testCase.prepareMocks != nil {
				testCase.prepareMocks(orders)
			}

			order, err := svc.UpdateStatus(77, testCase.next)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, order.Status)
		})
	}
}

func TestOrderService_Get_PopulatesQRLink(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(orders, mocks.NewCartRepository(t), mocks.NewPromoRepository(t), nil)

	orders.On("GetOrder", 77).Return(&domain.Order{ID: 77, Status: domain.StatusNew}, nil).Once()
	orders.On("ListOrdersByUser", 1).Return([]domain.Order{{ID: 77}, {ID: 78}}, nil).Once()

	order, err := svc.Get(77)
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/77/qrcode", order.QRCode)

	list, err := svc.ListByUser(1)
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/77/qrcode", list[0].QRCode)
	assert.Equal(t, "/api/orders/78/qrcode", list[1].QRCode)
}

func TestOrderService_GetQRCode_Regenerates(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(orders, mocks.NewCartRepository(t), mocks.NewPromoRepository(t), qr)

	orders.On("GetQRCode", 77).Return([]byte(nil), nil).Once()
	qr.On("Generate", 77).Return([]byte("png"), nil).Once()
	orders.On("SaveQRCode", 77, []byte("png")).Return(nil).Once()

	data, err := svc.GetQRCode(77)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestReviewService_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMocks  func(repository *mocks.ReviewRepository, cache *mocks.RatingCache, publisher *mocks.ReviewPublisher)
		expectedError error
	}{
		{
			name:   "success_create_new_review",
			review: &domain.Review{UserID: 1, DishID: 10, Rating: 5, Comment: "Great!"},
			prepareMocks: func(repository *mocks.ReviewRepository, cache *mocks.RatingCache, publisher *mocks.ReviewPublisher) {
				repository.On("GetExistingReviewID", 1, 10).Return(0, sql.ErrNoRows).Once()
				repository.On("InsertReview", mock.Anything).Return(nil).Once()
				cache.On("Invalidate", ctx, 10).Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "success_update_existing_review",
			review: &domain.Review{UserID: 1, DishID: 10, Rating: 3, Comment: "Changed my mind"},
			prepareMocks: func(repository *mocks.ReviewRepository, cache *mocks.RatingCache, publisher *mocks.ReviewPublisher) {
				repository.On("GetExistingReviewID", 1, 10).Return(42, nil).Once()
				repository.On("UpdateReview", 42, mock.Anything).Return(nil).Once()
				cache.On("Invalidate", ctx, 10).Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "error_rating_too_low",
			review:        &domain.Review{UserID: 1, DishID: 10, Rating: 0},
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "error_rating_too_high",
			review:        &domain.Review{UserID: 1, DishID: 10, Rating: 6},
			expectedError: service.ErrInvalidRating,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewReviewRepository(t)
			favorites := mocks.NewFavoriteRepository(t)
			cache := mocks.NewRatingCache(t)
			publisher := mocks.NewReviewPublisher(t)
			svc := service.NewReviewService(repository, favorites, cache, publisher)

			if testCase.prepareMocks != nil {
				testCase.prepareMocks(repository, cache, publisher)
			}

			err := svc.CreateOrUpdate(ctx, testCase.review)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_CreateOrUpdate_SetsIDOnUpdate(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	svc := service.NewReviewService(repository, mocks.NewFavoriteRepository(t), nil, nil)

	repository.On("GetExistingReviewID", 1, 10).Return(42, nil).Once()
	repository.On("UpdateReview", 42, mock.Anything).Return(nil).Once()

	review := &domain.Review{UserID: 1, DishID: 10, Rating: 4}
	require.NoError(t, svc.CreateOrUpdate(context.Background(), review))
	assert.Equal(t, 42, review.ID)
}

func TestReviewService_DishRating(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_hit", func(t *testing.T) {
		repository := mocks.NewReviewRepository(t)
		cache := mocks.NewRatingCache(t)
		svc := service.NewReviewService(repository, mocks.NewFavoriteRepository(t), cache, nil)

		cache.On("GetRating", ctx, 10).Return(4.5, 12, true, nil).Once()

		avg, count, err := svc.DishRating(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 4.5, avg)
		assert.Equal(t, 12, count)
	})

	t.Run("cache_miss_reads_repository", func(t *testing.T) {
		repository := mocks.NewReviewRepository(t)
		cache := mocks.NewRatingCache(t)
		svc := service.NewReviewService(repository, mocks.NewFavoriteRepository(t), cache, nil)

		cache.On("GetRating", ctx, 10).Return(0.0, 0, false, nil).Once()
		repository.On("DishRating", 10).Return(4.2, 7, nil).Once()
		cache.On("SetRating", ctx, 10, 4.2, 7).Return(nil).Once()

		avg, count, err := svc.DishRating(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 4.2, avg)
		assert.Equal(t, 7, count)
	})

	t.Run("no_reviews_yet", func(t *testing.T) {
		repository := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(repository, mocks.NewFavoriteRepository(t), nil, nil)

		repository.On("DishRating", 10).Return(0.0, 0, nil).Once()

		avg, count, err := svc.DishRating(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, avg)
		assert.Zero(t, count)
	})
}

func TestReviewService_ToggleFavorite(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(favorites *mocks.FavoriteRepository)
		expectedSet  bool
	}{
		{
			name: "toggles_on",
			prepareMocks: func(favorites *mocks.FavoriteRepository) {
				favorites.On("HasFavorite", 1, 10).Return(false, nil).Once()
				favorites.On("InsertFavorite", 1, 10).Return(nil).Once()
			},
			expectedSet: true,
		},
		{
			name: "toggles_off",
			prepareMocks: func(favorites *mocks.FavoriteRepository) {
				favorites.On("HasFavorite", 1, 10).Return(true, nil).Once()
				favorites.On("DeleteFavorite", 1, 10).Return(int64(1), nil).Once()
			},
			expectedSet: false,
		},
		{
			name: "concurrent_insert_still_toggles_off",
			prepareMocks: func(favorites *mocks.FavoriteRepository) {
				favorites.On("HasFavorite", 1, 10).Return(false, nil).Once()
				favorites.On("InsertFavorite", 1, 10).Return(domain.ErrDuplicate).Once()
				favorites.On("DeleteFavorite", 1, 10).Return(int64(1), nil).Once()
			},
			expectedSet: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			favorites := mocks.NewFavoriteRepository(t)
			svc := service.NewReviewService(mocks.NewReviewRepository(t), favorites, nil, nil)

			testCase.prepareMocks(favorites)

			set, err := svc.ToggleFavorite(1, 10)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedSet, set)
		})
	}
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		prepareMocks  func(repository *mocks.AccountRepository)
		expectedError error
	}{
		{
			name:     "success",
			username: "ivan",
			email:    "ivan@example.com",
			prepareMocks: func(repository *mocks.AccountRepository) {
				repository.On("RegisterUser", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.User).ID = 1
						args.Get(1).(*domain.Profile).UserID = 1
					}).
					Return(nil).Once()
			},
		},
		{
			name:          "error_missing_username",
			email:         "ivan@example.com",
			expectedError: service.ErrValidation,
		},
		{
			name:     "error_already_registered",
			username: "ivan",
			email:    "ivan@example.com",
			prepareMocks: func(repository *mocks.AccountRepository) {
				repository.On("RegisterUser", mock.Anything, mock.Anything).Return(domain.ErrDuplicate).Once()
			},
			expectedError: service.ErrUserExists,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewAccountRepository(t)
			svc := service.NewAccountService(repository)

			if testCase.prepareMocks != nil {
				testCase.prepareMocks(repository)
			}

			user, profile, err := svc.Register(testCase.username, testCase.email)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, 1, profile.UserID)
			assert.NotNil(t, profile.Preferences)
		})
	}
}

func TestPromoService_Create(t *testing.T) {
	repository := mocks.NewPromoRepository(t)
	svc := service.NewPromoService(repository)

	repository.On("CreatePromoCode", mock.MatchedBy(func(p *domain.PromoCode) bool {
		return p.Code == "SUMMER20"
	})).Return(nil).Once()

	err := svc.Create(&domain.PromoCode{
		Code:      " summer20 ",
		Percent:   20,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Create(&domain.PromoCode{Percent: 20, ExpiresAt: time.Now()}), service.ErrValidation)
	assert.ErrorIs(t, svc.Create(&domain.PromoCode{Code: "X", Percent: 0, ExpiresAt: time.Now()}), service.ErrValidation)
	assert.ErrorIs(t, svc.Create(&domain.PromoCode{Code: "X", Percent: 101, ExpiresAt: time.Now()}), service.ErrValidation)
	assert.ErrorIs(t, svc.Create(&domain.PromoCode{Code: "X", Percent: 10}), service.ErrValidation)
}

func TestPromoService_Preview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	promo := &domain.PromoCode{
		Code:      "SUMMER20",
		Percent:   20,
		MinTotal:  money("500"),
		Active:    true,
		ExpiresAt: now.Add(24 * time.Hour),
	}

	t.Run("success", func(t *testing.T) {
		repository := mocks.NewPromoRepository(t)
		svc := service.NewPromoService(repository)

		repository.On("GetPromoCode", "SUMMER20").Return(promo, nil).Once()

		total, err := svc.Preview("summer20", money("1300"), now)
		require.NoError(t, err)
		assert.True(t, total.Equal(money("1040")), "got %s", total)
	})

	t.Run("error_below_minimum", func(t *testing.T) {
		repository := mocks.NewPromoRepository(t)
		svc := service.NewPromoService(repository)

		repository.On("GetPromoCode", "SUMMER20").Return(promo, nil).Once()

		_, err := svc.Preview("SUMMER20", money("100"), now)
		assert.ErrorIs(t, err, domain.ErrPromoBelowMinimum)
	})
}

func TestPromoService_Redeem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repository := mocks.NewPromoRepository(t)
	svc := service.NewPromoService(repository)

	repository.On("RedeemPromoCode", "SUMMER20", money("1300"), now).
		Return(&domain.PromoCode{Code: "SUMMER20", Percent: 20, UsedCount: 1}, nil).Once()

	promo, total, err := svc.Redeem("summer20", money("1300"), now)
	require.NoError(t, err)
	assert.Equal(t, 1, promo.UsedCount)
	assert.True(t, total.Equal(money("1040")))

	repository.On("RedeemPromoCode", "GONE", money("1300"), now).
		Return(nil, sql.ErrNoRows).Once()

	_, _, err = svc.Redeem("GONE", money("1300"), now)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	repository := mocks.NewAccountRepository(t)
	svc := service.NewAccountService(repository)

	assert.ErrorIs(t, svc.UpdateProfile(&domain.Profile{}), service.ErrValidation)

	repository.On("UpdateProfile", mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.UpdateProfile(&domain.Profile{UserID: 1, Phone: "+70000000000"}))
}
