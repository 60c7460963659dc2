package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"resto-backend/internal/domain"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	repo      ReviewRepository
	favorites FavoriteRepository
	cache     RatingCache
	publisher ReviewPublisher
}

func NewReviewService(repo ReviewRepository, favorites FavoriteRepository, cache RatingCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		repo:      repo,
		favorites: favorites,
		cache:     cache,
		publisher: publisher,
	}
}

// CreateOrUpdate stores the review, updating in place when the user already
// reviewed the dish. The (user, dish) pair stays unique either way.
func (s *ReviewService) CreateOrUpdate(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	existingID, err := s.repo.GetExistingReviewID(review.UserID, review.DishID)
	switch {
	case err == nil && existingID > 0:
		if err := s.repo.UpdateReview(existingID, review); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		review.ID = existingID
	case errors.Is(err, sql.ErrNoRows):
		if err := s.repo.InsertReview(review); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
	default:
		return fmt.Errorf("failed to check existing review: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, review.DishID); err != nil {
			log.Printf("warning: failed to invalidate rating cache for dish %d: %v", review.DishID, err)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:      domain.EventNewReview,
			UserID:    review.UserID,
			DishID:    review.DishID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		})
	}

	return nil
}

func (s *ReviewService) ListDishReviews(dishID int) ([]domain.Review, error) {
	return s.repo.ListDishReviews(dishID)
}

func (s *ReviewService) DishRating(ctx context.Context, dishID int) (float64, int, error) {
	if s.cache != nil {
		if avg, count, ok, err := s.cache.GetRating(ctx, dishID); err == nil && ok {
			return avg, count, nil
		}
	}
	avg, count, err := s.repo.DishRating(dishID)
	if err != nil {
		return 0, 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetRating(ctx, dishID, avg, count); err != nil {
			log.Printf("warning: failed to cache rating for dish %d: %v", dishID, err)
		}
	}
	return avg, count, nil
}

// ToggleFavorite flips the bookmark for a (user, dish) pair and reports
// whether it is now set.
func (s *ReviewService) ToggleFavorite(userID, dishID int) (bool, error) {
	has, err := s.favorites.HasFavorite(userID, dishID)
	if err != nil {
		return false, err
	}
	if has {
		_, err := s.favorites.DeleteFavorite(userID, dishID)
		return false, err
	}
	if err := s.favorites.InsertFavorite(userID, dishID); err != nil {
		// A concurrent toggle won the insert; flip it off as requested.
		if errors.Is(err, domain.ErrDuplicate) {
			_, derr := s.favorites.DeleteFavorite(userID, dishID)
			return false, derr
		}
		return false, err
	}
	return true, nil
}

func (s *ReviewService) ListFavorites(userID int) ([]domain.Dish, error) {
	return s.favorites.ListFavorites(userID)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
