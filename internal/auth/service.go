// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/connectvault/connectvault/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidRole        = errors.New("invalid role")
)

type UserInfo struct {
	ID           string
	FullName     string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	GetByUsernameOrEmail(
		ctx context.Context,
		identifier string,
	) (*UserInfo, error)
	Create(
		ctx context.Context,
		fullName, username, email, passwordHash, role string,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// ResetNotifier delivers a freshly generated reset token to the account
// owner. Email relay lives outside this service; the default implementation
// only logs that a token was issued.
type ResetNotifier interface {
	SendResetToken(ctx context.Context, email, token string) error
}

type LogNotifier struct{}

func (LogNotifier) SendResetToken(_ context.Context, email, _ string) error {
	slog.Info("password reset token issued", "email", email)
	return nil
}

type Service struct {
	repo     Repository
	jwt      *TokenManager
	users    UserProvider
	notifier ResetNotifier
	resetTTL time.Duration
}

func NewService(
	repo Repository,
	jwt *TokenManager,
	users UserProvider,
	notifier ResetNotifier,
	resetTTL time.Duration,
) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &Service{
		repo:     repo,
		jwt:      jwt,
		users:    users,
		notifier: notifier,
		resetTTL: resetTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	role, err := normalizeRole(req.Role)
	if err != nil {
		return err
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Create(
		ctx,
		req.FullName,
		req.Username,
		req.Email,
		passwordHash,
		role,
	)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing equalization so unknown usernames cost the same
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	accessToken, err := s.jwt.CreateAccessToken(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ForgotPassword generates and stores a reset token when the identifier
// matches an account. The returned error is nil for unknown identifiers as
// well: callers must answer with the same acknowledgement either way, so
// account existence never leaks.
func (s *Service) ForgotPassword(ctx context.Context, identifier string) error {
	user, err := s.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	reset := &ResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: core.HashToken(token),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}

	if err := s.repo.CreateReset(ctx, reset); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.notifier.SendResetToken(ctx, user.Email, token); err != nil {
		slog.Error("send reset token", "error", err)
	}

	return nil
}

func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	newHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.ConsumeReset(ctx, core.HashToken(req.Token), newHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}

	return nil
}

// GetCurrentUser resolves the authenticated identity from the token subject.
// A missing user (deleted after issuance) is an authentication failure, not
// a lookup failure.
func (s *Service) GetCurrentUser(
	ctx context.Context,
	username string,
) (*UserResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("resolve current user: %w", core.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *Service) PurgeExpiredResets(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}

// normalizeRole parses the requested role into the canonical lowercase enum
// once, at the boundary. Authorization checks elsewhere compare canonical
// values only.
func normalizeRole(role string) (string, error) {
	if role == "" {
		return RoleUser, nil
	}

	switch strings.ToLower(role) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
