package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	BookingTypeArena = "ARENA"
	BookingTypeCare  = "CARE"
)

// ReviewedEvent is published after a review commits. Delivery is best effort.
type ReviewedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	BookingType string    `json:"booking_type"`
	Status      string    `json:"status"`
	ReviewedBy  uuid.UUID `json:"reviewed_by"`
	ReviewedAt  time.Time `json:"reviewed_at"`
}

type EventPublisher interface {
	PublishReviewed(ctx context.Context, event ReviewedEvent) error
}
