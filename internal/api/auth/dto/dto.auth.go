// Package authdto - request inputs for the auth domain.
package authdto

import (
	"github.com/shaesansv/pet-new/internal/api/auth/models"
)

// UserRegisterInput is the account registration request.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput is the login request.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserLoginResult is the payload returned on successful login.
type UserLoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
