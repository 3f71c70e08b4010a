// Package identity implements login, logout and self-service profile edits.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/application/document"
	"github.com/predio/backend/internal/domain/residency"
	"github.com/predio/backend/internal/domain/shared"
)

// ErrInvalidCredentials is returned for a wrong email or password. It maps
// to 401 and deliberately does not reveal which of the two was wrong.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// TokenIssuer mints signed access tokens
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, error)
}

// TokenRevoker records a token as unusable until it expires
type TokenRevoker interface {
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
}

// Service handles authentication and profile self-service
type Service struct {
	profileRepo residency.ProfileRepository
	tokens      TokenIssuer
	revoker     TokenRevoker
	storage     document.ObjectStorageService
	logger      *zap.Logger
}

// NewService creates an identity Service
func NewService(
	profileRepo residency.ProfileRepository,
	tokens TokenIssuer,
	revoker TokenRevoker,
	storage document.ObjectStorageService,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profileRepo: profileRepo,
		tokens:      tokens,
		revoker:     revoker,
		storage:     storage,
		logger:      logger,
	}
}

// Login verifies credentials and mints an access token
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !profile.VerifyPassword(req.Password) {
		s.logger.Warn("Failed login attempt", zap.String("email", profile.Email))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		Profile:     ToProfileResponse(profile, s.avatarURL(ctx, profile)),
	}, nil
}

// Logout revokes the caller's token until its natural expiry
func (s *Service) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.revoker == nil || jti == "" {
		return nil
	}
	return s.revoker.Blacklist(ctx, jti, time.Until(expiresAt))
}

// Me returns the caller's own profile
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToProfileResponse(profile, s.avatarURL(ctx, profile))
	return &resp, nil
}

// UpdateProfile applies self-service edits to name and phone
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		if err := profile.SetFullName(req.FullName); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		if err := profile.SetPhone(req.Phone); err != nil {
			return nil, err
		}
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, shared.ErrStoreWrite
	}

	resp := ToProfileResponse(profile, s.avatarURL(ctx, profile))
	return &resp, nil
}

// SetAvatar stores an avatar image and binds its key to the profile
func (s *Service) SetAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*ProfileResponse, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Avatar cannot be empty")
	}

	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := document.AvatarKey(userID)
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, shared.ErrStorage
	}
	if err := profile.SetAvatarKey(key); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, shared.ErrStoreWrite
	}

	resp := ToProfileResponse(profile, s.avatarURL(ctx, profile))
	return &resp, nil
}

// avatarURL presigns the avatar download, best-effort
func (s *Service) avatarURL(ctx context.Context, profile *residency.Profile) string {
	if profile.AvatarKey == "" || s.storage == nil {
		return ""
	}
	url, _, err := s.storage.GenerateDownloadURL(ctx, profile.AvatarKey, 0)
	if err != nil {
		s.logger.Warn("Failed to presign avatar",
			zap.String("key", profile.AvatarKey), zap.Error(err))
		return ""
	}
	return url
}
