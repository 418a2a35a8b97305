package dto

import "github.com/reportesapp/backend/internal/models"

type GoogleLoginRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	// Optional Google ID token; verified claims take precedence over the
	// bare fields when GOOGLE_CLIENT_ID is configured.
	IDToken string `json:"id_token,omitempty"`
}

type LoginResponse struct {
	User models.User `json:"user"`
}

type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
