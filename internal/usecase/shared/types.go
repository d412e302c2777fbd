package shared

import (
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-model query types.

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Role         user.Role
	Status       user.Status
	CreatedAt    time.Time
}

func (u *UserSnapshot) IsAdmin() bool {
	return u.Role == user.RoleAdmin && u.Status == user.StatusActive
}

func (u *UserSnapshot) CanBook() bool {
	return u.Status == user.StatusActive
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	PricePence      int
	DurationMinutes int
	Active          bool
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
}

// BookingSnapshot covers both booking kinds for review workflows.
type BookingSnapshot struct {
	ID              uuid.UUID
	RequesterUserID *uuid.UUID
	Status          booking.Status
}
