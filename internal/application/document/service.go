package document

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/shared"
)

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStorageService abstracts the S3-compatible backend holding tenant
// documents. Each tenant's files live under the tenants/{id}/ prefix.
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, storageKey string) error
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

// DocumentDTO is a tenant document with a short-lived download URL
type DocumentDTO struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	DownloadURL  string    `json:"download_url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UploadTicketDTO carries a presigned upload URL for a new document
type UploadTicketDTO struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service manages tenant documents on object storage
type Service struct {
	storage ObjectStorageService
	logger  *zap.Logger
}

// NewService creates a document Service
func NewService(storage ObjectStorageService, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, logger: logger}
}

// namespace returns the storage prefix owning every document of a tenant
func namespace(tenantID uuid.UUID) string {
	return fmt.Sprintf("tenants/%s/", tenantID)
}

// AvatarKey returns the storage key of a user's avatar. Avatars live
// outside the document namespace so they never show up in document
// listings, which is why RemoveAvatar exists alongside Delete.
func AvatarKey(userID uuid.UUID) string {
	return fmt.Sprintf("avatars/%s", userID)
}

// List returns the tenant's documents with presigned download URLs
func (s *Service) List(ctx context.Context, tenantID uuid.UUID) ([]DocumentDTO, error) {
	objects, err := s.storage.ListObjects(ctx, namespace(tenantID))
	if err != nil {
		return nil, shared.ErrStorage
	}

	documents := make([]DocumentDTO, 0, len(objects))
	for _, obj := range objects {
		url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, obj.Key, 0)
		if err != nil {
			s.logger.Warn("Failed to presign document download",
				zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		documents = append(documents, DocumentDTO{
			Key:          obj.Key,
			Name:         path.Base(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified,
			DownloadURL:  url,
			ExpiresAt:    expiresAt,
		})
	}
	return documents, nil
}

// GenerateUploadURL issues a presigned PUT URL for a new tenant document
func (s *Service) GenerateUploadURL(ctx context.Context, tenantID uuid.UUID, filename, contentType string) (*UploadTicketDTO, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Filename cannot be empty")
	}

	key := namespace(tenantID) + filename
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, contentType, 0)
	if err != nil {
		return nil, shared.ErrStorage
	}
	return &UploadTicketDTO{Key: key, UploadURL: url, ExpiresAt: expiresAt}, nil
}

// Upload stores a document directly, bypassing the presigned flow
func (s *Service) Upload(ctx context.Context, tenantID uuid.UUID, filename string, data []byte, contentType string) (string, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Filename cannot be empty")
	}
	if len(data) == 0 {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Document cannot be empty")
	}

	key := namespace(tenantID) + filename
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Document upload failed",
			zap.String("key", key), zap.Error(err))
		return "", shared.ErrStorage
	}
	return key, nil
}

// Delete removes a single document. The key must belong to the tenant's
// namespace so one tenant cannot delete another's files.
func (s *Service) Delete(ctx context.Context, tenantID uuid.UUID, key string) error {
	if !strings.HasPrefix(key, namespace(tenantID)) {
		return shared.ErrNotAuthorized
	}
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		return shared.ErrStorage
	}
	return nil
}

// RemoveAvatar deletes the user's avatar object. The avatar key sits
// outside the tenants/ namespace, so Delete's ownership guard would
// reject it; offboarding uses this instead.
func (s *Service) RemoveAvatar(ctx context.Context, userID uuid.UUID) error {
	if err := s.storage.DeleteObject(ctx, AvatarKey(userID)); err != nil {
		return shared.ErrStorage
	}
	return nil
}

// DeleteAllForTenant wipes the tenant's entire document namespace.
// Offboarding calls this after the database cascade completes.
func (s *Service) DeleteAllForTenant(ctx context.Context, tenantID uuid.UUID) error {
	if err := s.storage.DeletePrefix(ctx, namespace(tenantID)); err != nil {
		s.logger.Error("Failed to delete tenant document namespace",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return shared.ErrStorage
	}
	return nil
}

// sanitizeFilename keeps the base name only and rejects path traversal
func sanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = path.Base(filename)
	if filename == "." || filename == "/" || filename == ".." {
		return ""
	}
	return filename
}
