package request

import (
	"github.com/google/uuid"
)

type CreateCareBookingRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	HorseName string    `json:"horse_name" binding:"required"`
}

type ProxyCareBookingRequest struct {
	ServiceID     uuid.UUID  `json:"service_id" binding:"required"`
	Date          string     `json:"date" binding:"required"`
	HorseName     string     `json:"horse_name" binding:"required"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
}
