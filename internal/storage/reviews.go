package storage

import (
	"resto-backend/internal/domain"
)

func (r *PostgresRepository) GetExistingReviewID(userID, dishID int) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		SELECT id FROM reviews WHERE user_id = $1 AND dish_id = $2
	`, userID, dishID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) InsertReview(review *domain.Review) error {
	err := r.DB.QueryRow(`
		INSERT INTO reviews (user_id, dish_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, review.UserID, review.DishID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	return mapUnique(err)
}

func (r *PostgresRepository) UpdateReview(id int, review *domain.Review) error {
	return r.DB.QueryRow(`
		UPDATE reviews
		SET rating = $1, comment = $2, updated_at = now()
		WHERE id = $3
		RETURNING created_at, updated_at
	`, review.Rating, review.Comment, id).
		Scan(&review.CreatedAt, &review.UpdatedAt)
}

func (r *PostgresRepository) ListDishReviews(dishID int) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, dish_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE dish_id = $1
		ORDER BY created_at DESC
	`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.DishID, &rev.Rating,
			&rev.Comment, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// DishRating returns the mean rating and review count for a dish; a dish
// without reviews rates 0.
func (r *PostgresRepository) DishRating(dishID int) (float64, int, error) {
	var avg float64
	var count int
	err := r.DB.QueryRow(`
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
		FROM reviews
		WHERE dish_id = $1
	`, dishID).Scan(&avg, &count)
	return avg, count, err
}

// RefreshDishRating recomputes the stored aggregates on the dish row from its
// reviews.
func (r *PostgresRepository) RefreshDishRating(dishID int) error {
	_, err := r.DB.Exec(`
		UPDATE dishes
		SET avg_rating = COALESCE((
			SELECT ROUND(AVG(rating)::numeric, 2) FROM reviews WHERE dish_id = $1
		), 0),
		review_count = (
			SELECT COUNT(*) FROM reviews WHERE dish_id = $1
		)
		WHERE id = $1
	`, dishID)
	return err
}

func (r *PostgresRepository) InsertFavorite(userID, dishID int) error {
	_, err := r.DB.Exec(`
		INSERT INTO favorites (user_id, dish_id) VALUES ($1, $2)
	`, userID, dishID)
	return mapUnique(err)
}

func (r *PostgresRepository) DeleteFavorite(userID, dishID int) (int64, error) {
	result, err := r.DB.Exec(`
		DELETE FROM favorites WHERE user_id = $1 AND dish_id = $2
	`, userID, dishID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) HasFavorite(userID, dishID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND dish_id = $2)
	`, userID, dishID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListFavorites(userID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT `+dishColumns+`
		FROM dishes
		WHERE id IN (SELECT dish_id FROM favorites WHERE user_id = $1)
		ORDER BY name
	`, userID)
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
