package user

import "time"

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	IsAdmin         bool
	AvatarPath      *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// RefreshToken is a persisted refresh session. RemainingLifetime drives the
// expiry sweep: sessions with less than the warn threshold left are dropped.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

func (t *RefreshToken) RemainingLifetime(now time.Time) time.Duration {
	return t.ExpiresAt.Sub(now)
}
