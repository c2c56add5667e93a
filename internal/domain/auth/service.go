package auth

import (
	"context"
	"io"
)

// AuthService defines the authentication and profile business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	LoginWithGoogle(ctx context.Context, email string) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// SweepExpiringTokens removes refresh sessions whose remaining lifetime is
	// below the configured threshold, forcing those users to log in again.
	SweepExpiringTokens(ctx context.Context) error
}
