//go:build unit || e2e

package builder

import (
	reqdto "stable-booking-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "rider@example.com",
		Password: "password123",
		FullName: "Test Rider",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
	}
}
