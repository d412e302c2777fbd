//go:build unit || e2e

package builder

import (
	"time"

	domuser "stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/usecase/queries"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     domuser.Role
	Status   domuser.Status
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "rider@example.com",
		FullName: "Test Rider",
		Role:     domuser.RoleUser,
		Status:   domuser.StatusActive,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = domuser.RoleAdmin
	return u
}

func (u *UserBuilder) WithStatus(s domuser.Status) *UserBuilder {
	u.Status = s
	return u
}

func (u *UserBuilder) BuildDomain() *domuser.User {
	email, _ := domuser.NewEmail(u.Email)
	fullName := u.FullName
	return domuser.ReconstructUser(
		u.ID, email, "$2a$10$hash", &fullName, nil,
		u.Role, u.Status, nil, nil, time.Now(),
	)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	fullName := u.FullName
	return &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  &fullName,
		Role:      u.Role.String(),
		Status:    u.Status.String(),
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	fullName := u.FullName
	return &shared.UserSnapshot{
		ID:       u.ID,
		Email:    u.Email,
		FullName: &fullName,
		Role:     u.Role,
		Status:   u.Status,
	}
}
