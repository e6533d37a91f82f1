package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrEmailNotVerified   = errors.New("google account email not verified")
	ErrEmployeeNotFound   = errors.New("no employee registered with this email")
)
