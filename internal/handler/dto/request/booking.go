package request

import (
	"stable-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Arena       *string `json:"arena,omitempty"`
	Date        string  `json:"date" binding:"required"`
	Start       string  `json:"start" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

// ArenaOrDefault falls back to the main yard when the client omits the arena.
func (r CreateBookingRequest) ArenaOrDefault() string {
	if r.Arena == nil || *r.Arena == "" {
		return booking.ArenaGreenachers.String()
	}
	return *r.Arena
}

type ProxyBookingRequest struct {
	Arena         string     `json:"arena" binding:"required"`
	Date          string     `json:"date" binding:"required"`
	Start         string     `json:"start" binding:"required"`
	DurationMin   int        `json:"duration_min" binding:"required"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
}
