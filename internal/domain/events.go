package domain

import "time"

const EventNewReview = "new_review"

// ReviewEvent is published to Kafka whenever a review is created or updated,
// so the rating consumer can refresh the dish's aggregates.
type ReviewEvent struct {
	Type      string    `json:"type"`
	UserID    int       `json:"user_id"`
	DishID    int       `json:"dish_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}
