package service

import (
	"errors"
	"fmt"
	"regexp"

	"resto-backend/internal/domain"
)

var (
	ErrSlugTaken   = errors.New("slug is already in use")
	ErrInvalidSlug = errors.New("slug must be lowercase letters, digits and hyphens")

	// ErrValidation wraps field-level validation failures across services so
	// the HTTP layer can report them as client errors.
	ErrValidation = errors.New("validation failed")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateCategory(c *domain.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	return mapSlug(s.repo.CreateCategory(c))
}

func (s *CatalogService) UpdateCategory(c *domain.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	return mapSlug(s.repo.UpdateCategory(c))
}

func (s *CatalogService) ListCategories(activeOnly bool) ([]domain.Category, error) {
	return s.repo.ListCategories(activeOnly)
}

func (s *CatalogService) GetCategoryBySlug(slug string) (*domain.Category, error) {
	return s.repo.GetCategoryBySlug(slug)
}

func (s *CatalogService) CreateDish(d *domain.Dish) error {
	if err := validateDish(d); err != nil {
		return err
	}
	return mapSlug(s.repo.CreateDish(d))
}

func (s *CatalogService) UpdateDish(d *domain.Dish) error {
	if err := validateDish(d); err != nil {
		return err
	}
	return mapSlug(s.repo.UpdateDish(d))
}

func (s *CatalogService) GetDish(id int) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *CatalogService) GetDishBySlug(slug string) (*domain.Dish, error) {
	return s.repo.GetDishBySlug(slug)
}

func (s *CatalogService) ListDishes(categoryID int, activeOnly bool) ([]domain.Dish, error) {
	return s.repo.ListDishes(categoryID, activeOnly)
}

func (s *CatalogService) DeleteDish(id int) (int64, error) {
	return s.repo.DeleteDish(id)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

func validateCategory(c *domain.Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if !slugPattern.MatchString(c.Slug) {
		return ErrInvalidSlug
	}
	if err := c.Tags.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func validateDish(d *domain.Dish) error {
	if d.CategoryID <= 0 {
		return fmt.Errorf("%w: dish must belong to a category", ErrValidation)
	}
	if d.Type == "" {
		d.Type = domain.DishTypeMain
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown dish type %q", ErrValidation, d.Type)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: dish name is required", ErrValidation)
	}
	if !slugPattern.MatchString(d.Slug) {
		return ErrInvalidSlug
	}
	if !d.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if d.DiscountOn {
		if d.DiscountPrice == nil {
			return fmt.Errorf("%w: discounted price is required when the discount is on", ErrValidation)
		}
		if !d.DiscountPrice.IsPositive() || d.DiscountPrice.GreaterThanOrEqual(d.Price) {
			return fmt.Errorf("%w: discounted price must be positive and below the list price", ErrValidation)
		}
	}
	if d.SpiceLevel < 0 || d.SpiceLevel > domain.MaxSpiceLevel {
		return fmt.Errorf("%w: spice level must be between 0 and %d", ErrValidation, domain.MaxSpiceLevel)
	}
	if d.PrepMinutes < 0 {
		return fmt.Errorf("%w: prep time must not be negative", ErrValidation)
	}
	if err := d.Nutrition.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := d.Tags.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func mapSlug(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return ErrSlugTaken
	}
	return err
}
