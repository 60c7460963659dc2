package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DishType string

const (
	DishTypeStarter DishType = "starter"
	DishTypeSalad   DishType = "salad"
	DishTypeSoup    DishType = "soup"
	DishTypeMain    DishType = "main"
	DishTypeDessert DishType = "dessert"
	DishTypeDrink   DishType = "drink"
)

func (t DishType) Valid() bool {
	switch t {
	case DishTypeStarter, DishTypeSalad, DishTypeSoup, DishTypeMain, DishTypeDessert, DishTypeDrink:
		return true
	}
	return false
}

// Spice levels run from 0 (not spicy) to 4 (very spicy).
const MaxSpiceLevel = 4

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	Tags        Tags      `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Dish struct {
	ID            int              `json:"id"`
	CategoryID    int              `json:"category_id"`
	Type          DishType         `json:"type"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	ImageURL      string           `json:"image_url"`
	ServingSize   string           `json:"serving_size"`
	Composition   string           `json:"composition"`
	Nutrition     Nutrition        `json:"nutrition"`
	PrepMinutes   int              `json:"prep_minutes"`
	SpiceLevel    int              `json:"spice_level"`
	Tags          Tags             `json:"tags"`
	Active        bool             `json:"active"`
	DiscountOn    bool             `json:"discount_on"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Popularity    int              `json:"popularity"`
	AvgRating     float64          `json:"avg_rating"`
	ReviewCount   int              `json:"review_count"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// EffectivePrice is the price actually charged: the discounted price when a
// discount is switched on and present, the list price otherwise.
func (d *Dish) EffectivePrice() decimal.Decimal {
	if d.DiscountOn && d.DiscountPrice != nil {
		return *d.DiscountPrice
	}
	return d.Price
}

// DiscountPercent is the rounded percent drop from list to discounted price,
// 0 when no discount applies.
func (d *Dish) DiscountPercent() int {
	if !d.DiscountOn || d.DiscountPrice == nil || !d.Price.IsPositive() {
		return 0
	}
	drop := decimal.NewFromInt(1).Sub(d.DiscountPrice.Div(d.Price))
	return int(drop.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

type Cart struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Subtotal())
	}
	return total
}

type CartItem struct {
	ID       int    `json:"id"`
	CartID   int    `json:"cart_id"`
	DishID   int    `json:"dish_id"`
	DishName string `json:"dish_name"`
	// UnitPrice is the dish's effective price at read time.
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

func (i *CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	DishID    int       `json:"dish_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Favorite struct {
	ID      int       `json:"id"`
	UserID  int       `json:"user_id"`
	DishID  int       `json:"dish_id"`
	AddedAt time.Time `json:"added_at"`
}
