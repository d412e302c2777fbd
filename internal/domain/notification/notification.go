package notification

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindAccountApproved    Kind = "ACCOUNT_APPROVED"
	KindAccountDenied      Kind = "ACCOUNT_DENIED"
	KindAccountSuspended   Kind = "ACCOUNT_SUSPENDED"
	KindAccountReactivated Kind = "ACCOUNT_REACTIVATED"
	KindBookingApproved    Kind = "BOOKING_APPROVED"
	KindBookingDenied      Kind = "BOOKING_DENIED"
)

func (k Kind) String() string {
	return string(k)
}

// Canonical title and message per kind; the portal shows these verbatim.
var templates = map[Kind]struct {
	title   string
	message string
}{
	KindAccountApproved:    {"Account Approved", "Your account has been approved! You can now book services."},
	KindAccountDenied:      {"Account Denied", "Your account registration has been denied. Please contact support for more information."},
	KindAccountSuspended:   {"Account Suspended", "Your account has been suspended. Please contact support for more information."},
	KindAccountReactivated: {"Account Reactivated", "Your account has been reactivated. You can now access all services."},
	KindBookingApproved:    {"Booking Approved", "Your booking has been approved!"},
	KindBookingDenied:      {"Booking Denied", "Your booking has been denied. Please contact us for more information."},
}

type Notification struct {
	id               uuid.UUID
	userID           uuid.UUID
	kind             Kind
	title            string
	message          string
	relatedBookingID *uuid.UUID
	read             bool
	createdAt        time.Time
}

// New builds a notification addressed to userID with the canonical text for
// the kind. relatedBookingID is nil for account notifications.
func New(userID uuid.UUID, kind Kind, relatedBookingID *uuid.UUID) Notification {
	tpl := templates[kind]
	return Notification{
		id:               uuid.New(),
		userID:           userID,
		kind:             kind,
		title:            tpl.title,
		message:          tpl.message,
		relatedBookingID: relatedBookingID,
	}
}

func (n Notification) ID() uuid.UUID                { return n.id }
func (n Notification) UserID() uuid.UUID            { return n.userID }
func (n Notification) Kind() Kind                   { return n.kind }
func (n Notification) Title() string                { return n.title }
func (n Notification) Message() string              { return n.message }
func (n Notification) RelatedBookingID() *uuid.UUID { return n.relatedBookingID }
func (n Notification) Read() bool                   { return n.read }
func (n Notification) CreatedAt() time.Time         { return n.createdAt }
