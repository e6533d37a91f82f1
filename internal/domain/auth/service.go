package auth

import "context"

// Service defines the authentication operations
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	LoginWithGoogleEmail(ctx context.Context, email string, verified bool) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
