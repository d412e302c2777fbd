package response

import (
	"github.com/google/uuid"
)

type RegisterResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type LoginResponse struct {
	UserID       uuid.UUID `json:"userId"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
