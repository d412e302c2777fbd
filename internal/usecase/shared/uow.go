package shared

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/care"
	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/domain/service"
	"stable-booking-api/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: command-side reads outside a transaction
	Reads() CommandReads
}

type Tx interface {
	ArenaBookings() ArenaBookingRepository
	CareBookings() CareBookingRepository
	Users() UserRepository
	Services() ServiceRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the minimal lookups commands need for validation. The
// read-model queries live in usecase/queries and go through the readstores.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ArenaBookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	CareBookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type ArenaBookingRepository interface {
	// Reserve atomically re-checks the slot against committed state and
	// inserts. A conflicting slot surfaces as a CONFLICT repository error.
	Reserve(ctx context.Context, b *booking.Booking) error
	// MarkReviewed transitions PENDING to the given terminal status. Returns
	// false when the booking was not PENDING anymore (or does not exist).
	MarkReviewed(ctx context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error)
}

type CareBookingRepository interface {
	Create(ctx context.Context, b *care.Booking) error
	MarkReviewed(ctx context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status user.Status, adminID uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *service.Service) error
	Update(ctx context.Context, s *service.Service) (bool, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
