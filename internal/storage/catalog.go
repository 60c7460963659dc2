package storage

import (
	"github.com/shopspring/decimal"

	"resto-backend/internal/domain"
)

func (r *PostgresRepository) CreateCategory(c *domain.Category) error {
	err := r.DB.QueryRow(`
		INSERT INTO categories (name, slug, description, image_url, icon, active, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Slug, c.Description, c.ImageURL, c.Icon, c.Active, c.Tags).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) UpdateCategory(c *domain.Category) error {
	err := r.DB.QueryRow(`
		UPDATE categories
		SET name=$1, slug=$2, description=$3, image_url=$4, icon=$5, active=$6, tags=$7, updated_at=now()
		WHERE id=$8
		RETURNING created_at, updated_at
	`, c.Name, c.Slug, c.Description, c.ImageURL, c.Icon, c.Active, c.Tags, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) ListCategories(activeOnly bool) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image_url, icon, active, tags, created_at, updated_at
		FROM categories`
	if activeOnly {
		query += " WHERE active"
	}
	query += " ORDER BY name"

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Icon,
			&c.Active, &c.Tags, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategoryBySlug(slug string) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow(`
		SELECT id, name, slug, description, image_url, icon, active, tags, created_at, updated_at
		FROM categories
		WHERE slug = $1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Icon,
		&c.Active, &c.Tags, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const dishColumns = `
	id, category_id, type, name, slug, description, price, image_url, serving_size,
	composition, nutrition, prep_minutes, spice_level, tags, active, discount_on,
	discount_price, popularity, avg_rating, review_count, created_at, updated_at`

func scanDish(row interface{ Scan(...interface{}) error }) (*domain.Dish, error) {
	var d domain.Dish
	var discount decimal.NullDecimal
	err := row.Scan(&d.ID, &d.CategoryID, &d.Type, &d.Name, &d.Slug, &d.Description,
		&d.Price, &d.ImageURL, &d.ServingSize, &d.Composition, &d.Nutrition,
		&d.PrepMinutes, &d.SpiceLevel, &d.Tags, &d.Active, &d.DiscountOn,
		&discount, &d.Popularity, &d.AvgRating, &d.ReviewCount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if discount.Valid {
		d.DiscountPrice = &discount.Decimal
	}
	return &d, nil
}

func (r *PostgresRepository) CreateDish(d *domain.Dish) error {
	var discount decimal.NullDecimal
	if d.DiscountPrice != nil {
		discount = decimal.NullDecimal{Decimal: *d.DiscountPrice, Valid: true}
	}
	err := r.DB.QueryRow(`
		INSERT INTO dishes (category_id, type, name, slug, description, price, image_url,
			serving_size, composition, nutrition, prep_minutes, spice_level, tags, active,
			discount_on, discount_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, popularity, avg_rating, review_count, created_at, updated_at
	`, d.CategoryID, d.Type, d.Name, d.Slug, d.Description, d.Price, d.ImageURL,
		d.ServingSize, d.Composition, d.Nutrition, d.PrepMinutes, d.SpiceLevel, d.Tags,
		d.Active, d.DiscountOn, discount).
		Scan(&d.ID, &d.Popularity, &d.AvgRating, &d.ReviewCount, &d.CreatedAt, &d.UpdatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) UpdateDish(d *domain.Dish) error {
	var discount decimal.NullDecimal
	if d.DiscountPrice != nil {
		discount = decimal.NullDecimal{Decimal: *d.DiscountPrice, Valid: true}
	}
	err := r.DB.QueryRow(`
		UPDATE dishes
		SET category_id=$1, type=$2, name=$3, slug=$4, description=$5, price=$6,
			image_url=$7, serving_size=$8, composition=$9, nutrition=$10, prep_minutes=$11,
			spice_level=$12, tags=$13, active=$14, discount_on=$15, discount_price=$16,
			updated_at=now()
		WHERE id=$17
		RETURNING created_at, updated_at
	`, d.CategoryID, d.Type, d.Name, d.Slug, d.Description, d.Price, d.ImageURL,
		d.ServingSize, d.Composition, d.Nutrition, d.PrepMinutes, d.SpiceLevel, d.Tags,
		d.Active, d.DiscountOn, discount, d.ID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	return scanDish(r.DB.QueryRow(`SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id))
}

func (r *PostgresRepository) GetDishBySlug(slug string) (*domain.Dish, error) {
	return scanDish(r.DB.QueryRow(`SELECT `+dishColumns+` FROM dishes WHERE slug = $1`, slug))
}

// ListDishes returns dishes for a category (all categories when categoryID is
// zero), most popular first.
func (r *PostgresRepository) ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE ($1 = 0 OR category_id = $1)`
	if activeOnly {
		query += " AND active"
	}
	query += " ORDER BY popularity DESC, name"

	rows, err := r.DB.Query(query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
