package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
	ErrAdminAccount  = errors.New("admin accounts cannot be modified this way")
)

// User is a portal account. New registrations wait in PENDING_APPROVAL until
// an admin reviews them.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     *string
	phone        *string
	role         Role
	status       Status
	approvedBy   *uuid.UUID
	approvedAt   *time.Time
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, fullName, phone *string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phone:        phone,
		role:         RoleUser,
		status:       StatusPendingApproval,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	fullName, phone *string,
	role Role,
	status Status,
	approvedBy *uuid.UUID,
	approvedAt *time.Time,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phone:        phone,
		role:         role,
		status:       status,
		approvedBy:   approvedBy,
		approvedAt:   approvedAt,
		createdAt:    createdAt,
	}
}

func (u *User) Approve(adminID uuid.UUID, at time.Time) {
	u.setStatus(StatusActive, adminID, at)
}

// Deny suspends a pending registration. The row is kept for the audit trail.
func (u *User) Deny(adminID uuid.UUID, at time.Time) {
	u.setStatus(StatusSuspended, adminID, at)
}

func (u *User) Suspend(adminID uuid.UUID, at time.Time) error {
	if u.role == RoleAdmin {
		return ErrAdminAccount
	}
	u.setStatus(StatusSuspended, adminID, at)
	return nil
}

func (u *User) Reactivate(adminID uuid.UUID, at time.Time) {
	u.setStatus(StatusActive, adminID, at)
}

func (u *User) setStatus(s Status, adminID uuid.UUID, at time.Time) {
	u.status = s
	id := adminID
	t := at
	u.approvedBy = &id
	u.approvedAt = &t
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// CanBook reports whether the account may submit booking requests.
func (u *User) CanBook() bool {
	return u.status == StatusActive
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) FullName() *string      { return u.fullName }
func (u *User) Phone() *string         { return u.phone }
func (u *User) Role() Role             { return u.role }
func (u *User) Status() Status         { return u.status }
func (u *User) ApprovedBy() *uuid.UUID { return u.approvedBy }
func (u *User) ApprovedAt() *time.Time { return u.approvedAt }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
