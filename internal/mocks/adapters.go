package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resto-backend/internal/domain"
)

type RatingCache struct{ mock.Mock }

func NewRatingCache(t testingT) *RatingCache {
	m := &RatingCache{}
	register(t, &m.Mock, m)
	return m
}

func (m *RatingCache) SetRating(ctx context.Context, dishID int, avg float64, count int) error {
	return m.Called(ctx, dishID, avg, count).Error(0)
}

func (m *RatingCache) GetRating(ctx context.Context, dishID int) (float64, int, bool, error) {
	args := m.Called(ctx, dishID)
	return args.Get(0).(float64), args.Int(1), args.Bool(2), args.Error(3)
}

func (m *RatingCache) Invalidate(ctx context.Context, dishID int) error {
	return m.Called(ctx, dishID).Error(0)
}

type ReviewPublisher struct{ mock.Mock }

func NewReviewPublisher(t testingT) *ReviewPublisher {
	m := &ReviewPublisher{}
	register(t, &m.Mock, m)
	return m
}

func (m *ReviewPublisher) PublishReview(ctx context.Context, event domain.ReviewEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct{ mock.Mock }

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(t, &m.Mock, m)
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type RatingStore struct{ mock.Mock }

func NewRatingStore(t testingT) *RatingStore {
	m := &RatingStore{}
	register(t, &m.Mock, m)
	return m
}

func (m *RatingStore) RefreshDishRating(dishID int) error {
	return m.Called(dishID).Error(0)
}

func (m *RatingStore) DishRating(dishID int) (float64, int, error) {
	args := m.Called(dishID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}
