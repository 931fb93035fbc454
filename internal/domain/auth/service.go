package auth

import "context"

// Service defines authentication operations. Successful logins carry
// the actor identity (user_id, employee_id, role) that approve and
// record operations consume from the request context.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterUserRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
