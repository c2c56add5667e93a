package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	UpdateAvatar(ctx context.Context, id string, avatarPath string) error
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error

	// DeleteExpiringBefore drops tokens whose expiry falls before the cutoff,
	// returning how many were removed. Used by the expiry sweep job.
	DeleteExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
