package document_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/application/document"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/storage"
)

func newService() (*document.Service, *storage.StubObjectStorage) {
	stub := storage.NewStubObjectStorage()
	return document.NewService(stub, nil), stub
}

func TestService_UploadAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	tenantID := uuid.New()

	key, err := svc.Upload(ctx, tenantID, "lease.pdf", []byte("pdf-bytes"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("tenants/%s/lease.pdf", tenantID), key)

	docs, err := svc.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "lease.pdf", docs[0].Name)
	assert.NotEmpty(t, docs[0].DownloadURL)

	other, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other, "namespaces are isolated per tenant")
}

func TestService_Upload_SanitizesFilename(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	tenantID := uuid.New()

	key, err := svc.Upload(ctx, tenantID, "../../etc/passwd", []byte("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("tenants/%s/passwd", tenantID), key)

	_, err = svc.Upload(ctx, tenantID, "..", []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestService_GenerateUploadURL(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	tenantID := uuid.New()

	ticket, err := svc.GenerateUploadURL(ctx, tenantID, "inventory.xlsx", "application/vnd.ms-excel")
	require.NoError(t, err)
	assert.Contains(t, ticket.Key, tenantID.String())
	assert.NotEmpty(t, ticket.UploadURL)
	assert.False(t, ticket.ExpiresAt.IsZero())
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	owner := uuid.New()
	intruder := uuid.New()

	key, err := svc.Upload(ctx, owner, "lease.pdf", []byte("pdf"), "application/pdf")
	require.NoError(t, err)

	err = svc.Delete(ctx, intruder, key)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized, "keys outside the caller's namespace are rejected")

	require.NoError(t, svc.Delete(ctx, owner, key))
	docs, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestService_RemoveAvatar(t *testing.T) {
	ctx := context.Background()
	svc, stub := newService()
	userID := uuid.New()

	avatarKey := document.AvatarKey(userID)
	require.NoError(t, stub.Upload(ctx, avatarKey, []byte("png-bytes"), "image/png"))

	// The namespace guard rejects avatar keys, so Delete cannot clean
	// them up during offboarding.
	err := svc.Delete(ctx, userID, avatarKey)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	require.NoError(t, svc.RemoveAvatar(ctx, userID))

	objects, err := stub.ListObjects(ctx, "avatars/")
	require.NoError(t, err)
	assert.Empty(t, objects, "avatar object is gone after removal")
}

func TestService_DeleteAllForTenant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	tenantID := uuid.New()

	_, err := svc.Upload(ctx, tenantID, "lease.pdf", []byte("a"), "application/pdf")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, tenantID, "id.png", []byte("b"), "image/png")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllForTenant(ctx, tenantID))

	docs, err := svc.List(ctx, tenantID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
