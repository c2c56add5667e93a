package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/user"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateAvatar(ctx context.Context, id string, avatarPath string) error {
	return nil
}

type fakeRefreshRepo struct {
	tokens map[string]user.RefreshToken

	sweepCutoff  time.Time
	sweepDeleted int64
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: make(map[string]user.RefreshToken)}
}

func (f *fakeRefreshRepo) Store(ctx context.Context, t user.RefreshToken) error {
	f.tokens[t.Token] = t
	return nil
}

func (f *fakeRefreshRepo) GetByToken(ctx context.Context, token string) (user.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return user.RefreshToken{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeRefreshRepo) Revoke(ctx context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return pgx.ErrNoRows
	}
	t.Revoked = true
	f.tokens[token] = t
	return nil
}

func (f *fakeRefreshRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	for k, t := range f.tokens {
		if t.UserID == userID {
			t.Revoked = true
			f.tokens[k] = t
		}
	}
	return nil
}

func (f *fakeRefreshRepo) DeleteExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.sweepCutoff = cutoff
	return f.sweepDeleted, nil
}

type fakeJWTService struct {
	issued  int
	revoked map[string]bool
}

func newFakeJWTService() *fakeJWTService {
	return &fakeJWTService{revoked: make(map[string]bool)}
}

func (f *fakeJWTService) GenerateAccessToken(userID string, email string, employeeID *string, isAdmin bool) (string, int64, error) {
	f.issued++
	return fmt.Sprintf("access-%d", f.issued), time.Now().Add(time.Hour).Unix(), nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	f.issued++
	return fmt.Sprintf("refresh-%d", f.issued), time.Now().Add(24 * time.Hour).Unix(), nil
}

func (f *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (f *fakeJWTService) RefreshTokenCookie(string, int64) *http.Cookie { return nil }

func (f *fakeJWTService) RevokeToken(token string) { f.revoked[token] = true }

func (f *fakeJWTService) IsTokenRevoked(token string) bool { return f.revoked[token] }

type fakeStorage struct{}

func (fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}
func (fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}
func (fakeStorage) Delete(ctx context.Context, path string) error { return nil }
func (fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}
func (fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

type authFixture struct {
	svc   *AuthServiceImpl
	users *fakeUserRepo
	repo  *fakeRefreshRepo
	jwt   *fakeJWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	users := newFakeUserRepo()
	repo := newFakeRefreshRepo()
	jwtService := newFakeJWTService()

	svc := NewAuthService(nil, users, repo, jwtService, fakeStorage{}, "opshub.io", 120*time.Hour).(*AuthServiceImpl)
	svc.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}

	return &authFixture{svc: svc, users: users, repo: repo, jwt: jwtService}
}

func (fx *authFixture) seedUser(t *testing.T, email, password string) user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashed := string(hash)

	u, err := fx.users.Create(context.Background(), user.User{Email: email, PasswordHash: &hashed, FullName: "Test User"})
	require.NoError(t, err)
	return u
}

func TestAuthService_Register_RejectsOutsideCompanyDomain(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "mallory@gmail.com",
		Password: "longenough",
		FullName: "Mallory",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Empty(t, fx.users.byEmail)
}

func TestAuthService_Register_CompanyDomain(t *testing.T) {
	fx := newAuthFixture(t)

	resp, err := fx.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "alice@opshub.io",
		Password: "longenough",
		FullName: "Alice",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice@opshub.io", resp.User.Email)

	stored := fx.users.byEmail["alice@opshub.io"]
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "longenough", *stored.PasswordHash)

	// The refresh session is persisted on issuance.
	assert.Contains(t, fx.repo.tokens, resp.RefreshToken)
}

func TestAuthService_Register_DomainCheckDisabledWhenUnset(t *testing.T) {
	fx := newAuthFixture(t)
	fx.svc.companyEmailDomain = ""

	_, err := fx.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "anyone@example.com",
		Password: "longenough",
		FullName: "Anyone",
	})
	assert.NoError(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := newAuthFixture(t)
	fx.seedUser(t, "alice@opshub.io", "password123")

	_, err := fx.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "alice@opshub.io",
		Password: "longenough",
		FullName: "Alice Again",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	fx := newAuthFixture(t)
	fx.seedUser(t, "alice@opshub.io", "password123")

	_, err := fx.svc.Login(context.Background(), auth.LoginRequest{Email: "alice@opshub.io", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := newAuthFixture(t)
	_, err := fx.users.Create(context.Background(), user.User{Email: "bob@opshub.io", FullName: "Bob"})
	require.NoError(t, err)

	_, err = fx.svc.Login(context.Background(), auth.LoginRequest{Email: "bob@opshub.io", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := newAuthFixture(t)
	u := fx.seedUser(t, "alice@opshub.io", "password123")

	old := user.RefreshToken{UserID: u.ID, Token: "old-refresh", ExpiresAt: time.Now().Add(200 * time.Hour)}
	require.NoError(t, fx.repo.Store(context.Background(), old))

	resp, err := fx.svc.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)

	// The old session dies with the new issuance.
	assert.True(t, fx.repo.tokens["old-refresh"].Revoked)
	assert.True(t, fx.jwt.IsTokenRevoked("old-refresh"))

	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, "old-refresh", resp.RefreshToken)
	assert.Contains(t, fx.repo.tokens, resp.RefreshToken)

	// A revoked token cannot be replayed.
	_, err = fx.svc.Refresh(context.Background(), "old-refresh")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	fx := newAuthFixture(t)
	u := fx.seedUser(t, "alice@opshub.io", "password123")

	stale := user.RefreshToken{UserID: u.ID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, fx.repo.Store(context.Background(), stale))

	_, err := fx.svc.Refresh(context.Background(), "stale")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.svc.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_SweepExpiringTokens(t *testing.T) {
	fx := newAuthFixture(t)
	fx.repo.sweepDeleted = 3

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fx.svc.now = func() time.Time { return now }

	require.NoError(t, fx.svc.SweepExpiringTokens(context.Background()))

	// Sessions expiring within the warn threshold are dropped.
	assert.Equal(t, now.Add(120*time.Hour), fx.repo.sweepCutoff)
}
