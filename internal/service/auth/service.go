package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/auth"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/user"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/jwt"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/storage"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
	"github.com/opshub-hq/opshub-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	user.RefreshTokenRepository
	jwt.Service
	storage             storage.FileStorage
	companyEmailDomain  string
	expiryWarnThreshold time.Duration

	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
	now   func() time.Time
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	refreshTokenRepository user.RefreshTokenRepository,
	jwtService jwt.Service,
	fileStorage storage.FileStorage,
	companyEmailDomain string,
	expiryWarnThreshold time.Duration,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		storage:                fileStorage,
		companyEmailDomain:     companyEmailDomain,
		expiryWarnThreshold:    expiryWarnThreshold,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	// Self-registration is restricted to the corporate domain.
	if a.companyEmailDomain != "" && !validator.IsCompanyEmail(req.Email, a.companyEmailDomain) {
		return auth.LoginResponse{}, validator.ValidationErrors{{
			Field:   "email",
			Message: fmt.Sprintf("email must belong to the %s domain", a.companyEmailDomain),
		}}
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.LoginResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: &hash,
		FullName:     req.FullName,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return a.issueTokens(ctx, created)
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// OAuth-only accounts have no password hash.
	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// LoginWithGoogle logs in a user whose Google email is already registered.
// Unknown emails are rejected rather than auto-provisioned.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string) (auth.LoginResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrOAuthEmailUnknown
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	stored, err := a.RefreshTokenRepository.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.Revoked {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if stored.RemainingLifetime(a.now()) <= 0 {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user for refresh: %w", err)
	}

	// Rotate: the old refresh token dies with the new issuance.
	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.LoginResponse{}, err
	}
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return err
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}
	return a.toProfileResponse(ctx, userData), nil
}

func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.ProfileResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	if req.FullName != nil {
		userData.FullName = *req.FullName
	}
	if req.Email != nil {
		userData.Email = *req.Email
	}

	if err := a.UserRepository.Update(ctx, userData); err != nil {
		return auth.ProfileResponse{}, err
	}

	return a.toProfileResponse(ctx, userData), nil
}

func (a *AuthServiceImpl) UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	if _, err := a.UserRepository.GetByID(ctx, userID); err != nil {
		return "", err
	}

	path := fmt.Sprintf("avatars/%s%s", uuid.NewString(), filepath.Ext(filename))
	storedPath, err := a.storage.Upload(ctx, file, path, "")
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := a.UserRepository.UpdateAvatar(ctx, userID, storedPath); err != nil {
		return "", err
	}

	url, err := a.storage.GetURL(ctx, storedPath, 0)
	if err != nil {
		return "", err
	}

	return url, nil
}

// SweepExpiringTokens drops refresh sessions whose remaining lifetime is
// below the warn threshold. Users on those sessions must log in again, which
// keeps near-dead sessions from lingering until their final expiry.
func (a *AuthServiceImpl) SweepExpiringTokens(ctx context.Context) error {
	cutoff := a.now().Add(a.expiryWarnThreshold)

	deleted, err := a.RefreshTokenRepository.DeleteExpiringBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		slog.Info("swept expiring refresh tokens", "deleted", deleted, "threshold", a.expiryWarnThreshold.String())
	}

	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.LoginResponse, error) {
	var resp auth.LoginResponse

	err := a.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			userData.ID, userData.Email, userData.EmployeeID, userData.IsAdmin)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.RefreshTokenRepository.Store(txCtx, user.RefreshToken{
			UserID:    userData.ID,
			Token:     resp.RefreshToken,
			ExpiresAt: time.Unix(resp.RefreshTokenExpiresIn, 0),
		}); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp.User = a.toProfileResponse(ctx, userData)
	return resp, nil
}

func (a *AuthServiceImpl) toProfileResponse(ctx context.Context, userData user.User) auth.ProfileResponse {
	resp := auth.ProfileResponse{
		ID:         userData.ID,
		Email:      userData.Email,
		FullName:   userData.FullName,
		IsAdmin:    userData.IsAdmin,
		EmployeeID: userData.EmployeeID,
	}

	if userData.AvatarPath != nil {
		if url, err := a.storage.GetURL(ctx, *userData.AvatarPath, 0); err == nil {
			resp.AvatarURL = &url
		}
	}

	return resp
}
