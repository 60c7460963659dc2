package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"resto-backend/internal/domain"
	"resto-backend/internal/service"
)

var validate = validator.New()

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Carts    service.CartServiceInterface
	Orders   service.OrderServiceInterface
	Reviews  service.ReviewServiceInterface
	Accounts service.AccountServiceInterface
	Promos   service.PromoServiceInterface
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	carts service.CartServiceInterface,
	orders service.OrderServiceInterface,
	reviews service.ReviewServiceInterface,
	accounts service.AccountServiceInterface,
	promos service.PromoServiceInterface,
) *Handler {
	return &Handler{
		Catalog:  catalog,
		Carts:    carts,
		Orders:   orders,
		Reviews:  reviews,
		Accounts: accounts,
		Promos:   promos,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/{slug}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")

	r.HandleFunc("/api/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{slug}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/dishes/{dishId:[0-9]+}/reviews", h.getDishReviews).Methods("GET")
	r.HandleFunc("/api/dishes/{dishId:[0-9]+}/rating", h.getDishRating).Methods("GET")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/users/{userId:[0-9]+}/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/profile", h.updateProfile).Methods("PUT")

	r.HandleFunc("/api/users/{userId:[0-9]+}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/users/{userId:[0-9]+}/cart/items/{dishId:[0-9]+}", h.setCartItemQuantity).Methods("PUT")
	r.HandleFunc("/api/users/{userId:[0-9]+}/cart/items/{dishId:[0-9]+}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/users/{userId:[0-9]+}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/users/{userId:[0-9]+}/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/users/{userId:[0-9]+}/dishes/{dishId:[0-9]+}/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/users/{userId:[0-9]+}/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/favorites/{dishId:[0-9]+}", h.toggleFavorite).Methods("POST")

	r.HandleFunc("/api/promocodes", h.createPromoCode).Methods("POST")
	r.HandleFunc("/api/promocodes/validate", h.validatePromoCode).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "resto-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateCategory(&category); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") == ""
	categories, err := h.Catalog.ListCategories(activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.Catalog.GetCategoryBySlug(mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = id
	if err := h.Catalog.UpdateCategory(&category); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateDish(&dish); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))
	activeOnly := r.URL.Query().Get("all") == ""
	dishes, err := h.Catalog.ListDishes(categoryID, activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Catalog.GetDishBySlug(mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = id
	if err := h.Catalog.UpdateDish(&dish); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Catalog.DeleteDish(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, profile, err := h.Accounts.Register(req.Username, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":    user,
		"profile": profile,
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	profile, err := h.Accounts.GetProfile(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile.UserID = userID
	if err := h.Accounts.UpdateProfile(&profile); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	cart, err := h.Carts.GetCart(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, cart)
}

type cartItemRequest struct {
	DishID   int `json:"dish_id" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	var req cartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.AddItem(userID, req.DishID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, _ := strconv.Atoi(vars["userId"])
	dishID, _ := strconv.Atoi(vars["dishId"])
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.SetQuantity(userID, dishID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, _ := strconv.Atoi(vars["userId"])
	dishID, _ := strconv.Atoi(vars["dishId"])
	cart, err := h.Carts.RemoveItem(userID, dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, cart)
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address"`
	Comment       string `json:"comment"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card online"`
	PromoCode     string `json:"promo_code"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	var req checkoutRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Checkout(r.Context(), userID, service.CheckoutRequest{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Comment:       req.Comment,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PromoCode:     req.PromoCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	orders, err := h.Orders.ListByUser(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdateStatus(orderID, domain.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, _ := strconv.Atoi(vars["userId"])
	dishID, _ := strconv.Atoi(vars["dishId"])
	var req reviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review := domain.Review{
		UserID:  userID,
		DishID:  dishID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) getDishReviews(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	reviews, err := h.Reviews.ListDishReviews(dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getDishRating(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	avg, count, err := h.Reviews.DishRating(r.Context(), dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dish_id":      dishID,
		"avg_rating":   avg,
		"review_count": count,
	})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, _ := strconv.Atoi(vars["userId"])
	dishID, _ := strconv.Atoi(vars["dishId"])
	favorited, err := h.Reviews.ToggleFavorite(userID, dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dish_id":   dishID,
		"favorited": favorited,
	})
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	dishes, err := h.Reviews.ListFavorites(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

type promoCreateRequest struct {
	Code        string          `json:"code" validate:"required"`
	Description string          `json:"description"`
	Percent     int             `json:"percent" validate:"required,gte=1,lte=100"`
	MinTotal    decimal.Decimal `json:"min_total"`
	Active      bool            `json:"active"`
	ExpiresAt   time.Time       `json:"expires_at" validate:"required"`
}

func (h *Handler) createPromoCode(w http.ResponseWriter, r *http.Request) {
	var req promoCreateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	promo := domain.PromoCode{
		Code:        req.Code,
		Description: req.Description,
		Percent:     req.Percent,
		MinTotal:    req.MinTotal,
		Active:      req.Active,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := h.Promos.Create(&promo); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, promo)
}

type promoValidateRequest struct {
	Code  string          `json:"code" validate:"required"`
	Total decimal.Decimal `json:"total"`
}

func (h *Handler) validatePromoCode(w http.ResponseWriter, r *http.Request) {
	var req promoValidateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	discounted, err := h.Promos.Preview(req.Code, req.Total, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"code":             req.Code,
		"total":            req.Total,
		"discounted_total": discounted,
	})
}

func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeCart(w http.ResponseWriter, cart *domain.Cart) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":  cart,
		"total": cart.Total(),
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrPromoInactive),
		errors.Is(err, domain.ErrPromoExpired),
		errors.Is(err, domain.ErrPromoBelowMinimum):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrUnknownStatus),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrMissingContactInfo):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
