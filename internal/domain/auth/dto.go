package auth

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "email",
			Message: "email format is invalid",
			Valid:   func() bool { return validator.IsValidEmail(r.Email) },
		},
		validator.Rule{
			Field:   "password",
			Message: "password is required",
			Valid:   func() bool { return !validator.IsEmpty(r.Password) },
		},
	)
}

type RegisterUserRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *RegisterUserRequest) Validate() error {
	return validator.First(
		validator.Rule{
			Field:   "email",
			Message: "email format is invalid",
			Valid:   func() bool { return validator.IsValidEmail(r.Email) },
		},
		validator.Rule{
			Field:   "password",
			Message: "password must be at least 8 characters",
			Valid:   func() bool { return len(r.Password) >= 8 },
		},
		validator.Rule{
			Field:   "full_name",
			Message: "full_name is required",
			Valid:   func() bool { return !validator.IsEmpty(r.FullName) },
		},
	)
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`

	// RefreshExpiresAt is consumed by the handler to scope the
	// refresh token cookie; it is not part of the JSON body.
	RefreshExpiresAt int64 `json:"-"`
}
