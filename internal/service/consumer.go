package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"resto-backend/internal/domain"
)

// RatingStore is the slice of the review repository the consumer needs.
type RatingStore interface {
	RefreshDishRating(dishID int) error
	DishRating(dishID int) (float64, int, error)
}

// RatingConsumer reads review events and refreshes the dish rating
// aggregates in Postgres and the Redis cache.
type RatingConsumer struct {
	Reader *kafka.Reader
	Store  RatingStore
	Cache  RatingCache
}

func NewRatingConsumer(reader *kafka.Reader, store RatingStore, cache RatingCache) *RatingConsumer {
	return &RatingConsumer{
		Reader: reader,
		Store:  store,
		Cache:  cache,
	}
}

func (c *RatingConsumer) Start(ctx context.Context) {
	log.Println("Starting rating consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ReviewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventNewReview {
			if err := c.Process(ctx, event); err != nil {
				log.Printf("Error processing review event: %v", err)
			}
		}
	}
}

func (c *RatingConsumer) Process(ctx context.Context, event domain.ReviewEvent) error {
	if err := c.Store.RefreshDishRating(event.DishID); err != nil {
		return err
	}

	avg, count, err := c.Store.DishRating(event.DishID)
	if err != nil {
		return err
	}

	if c.Cache != nil {
		if err := c.Cache.SetRating(ctx, event.DishID, avg, count); err != nil {
			log.Printf("warning: failed to cache rating for dish %d: %v", event.DishID, err)
		}
	}

	log.Printf("Refreshed rating for dish %d: %.2f over %d reviews", event.DishID, avg, count)
	return nil
}
