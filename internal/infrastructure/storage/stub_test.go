package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_UploadListDelete(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	require.NoError(t, stub.Upload(ctx, "tenants/abc/lease.pdf", []byte("lease"), "application/pdf"))
	require.NoError(t, stub.Upload(ctx, "tenants/abc/id.png", []byte("id"), "image/png"))
	require.NoError(t, stub.Upload(ctx, "tenants/xyz/lease.pdf", []byte("other"), "application/pdf"))

	objects, err := stub.ListObjects(ctx, "tenants/abc/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "tenants/abc/id.png", objects[0].Key)
	assert.Equal(t, int64(2), objects[0].Size)

	require.NoError(t, stub.DeletePrefix(ctx, "tenants/abc/"))

	objects, err = stub.ListObjects(ctx, "tenants/abc/")
	require.NoError(t, err)
	assert.Empty(t, objects)

	// Other namespaces are untouched
	objects, err = stub.ListObjects(ctx, "tenants/xyz/")
	require.NoError(t, err)
	assert.Len(t, objects, 1)
}

func TestStubObjectStorage_PresignedURLs(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	url, expiresAt, err := stub.GenerateDownloadURL(ctx, "tenants/abc/lease.pdf", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "/download/tenants/abc/lease.pdf")
	assert.True(t, expiresAt.After(time.Now()))

	_, _, err = stub.GenerateUploadURL(ctx, "", "application/pdf", time.Minute)
	assert.Error(t, err)
}
