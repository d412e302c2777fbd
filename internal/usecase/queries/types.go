package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	Arena         string     `json:"arena"`
	Date          time.Time  `json:"date"`
	StartMin      int32      `json:"start_min"`
	DurationMin   int32      `json:"duration_min"`
	PricePence    int32      `json:"price_pence"`
	Status        string     `json:"status"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	IsWalkIn      bool       `json:"is_walk_in"`
	RequestedAt   time.Time  `json:"requested_at"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// BookedSlot is the minimal shape the availability computation needs.
type BookedSlot struct {
	StartMin    int32
	DurationMin int32
}

type AvailabilityView struct {
	Arena           string       `json:"arena"`
	Date            time.Time    `json:"date"`
	DurationMin     int32        `json:"duration_min"`
	AvailableStarts []string     `json:"available_starts"`
	BookedSlots     []BookedSlot `json:"booked_slots"`
}

type CareBookingView struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	HorseName     string     `json:"horse_name"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	IsWalkIn      bool       `json:"is_walk_in"`
	RequestedAt   time.Time  `json:"requested_at"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PricePence  int32     `json:"price_pence"`
	DurationMin int32     `json:"duration_min"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationView struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	RelatedBookingID *uuid.UUID `json:"related_booking_id,omitempty"`
	Read             bool       `json:"read"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PendingBookingItem merges arena and care bookings into one review queue.
type PendingBookingItem struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"` // ARENA or CARE
	Summary      string     `json:"summary"`
	Date         time.Time  `json:"date"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CustomerName *string    `json:"customer_name,omitempty"`
	IsWalkIn     bool       `json:"is_walk_in"`
	RequestedAt  time.Time  `json:"requested_at"`
}

type AdminStatsView struct {
	PendingBookings   int64 `json:"pending_bookings"`
	PendingAccounts   int64 `json:"pending_accounts"`
	ActiveAccounts    int64 `json:"active_accounts"`
	MonthRevenuePence int64 `json:"month_revenue_pence"`
}
