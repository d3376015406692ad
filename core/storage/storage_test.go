package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProviderURL(t *testing.T) {
	p := NewLocalProvider("http://localhost:8100/storage/")
	ctx := context.Background()

	got, err := p.URL(ctx, "/photos/cover.webp")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8100/storage/photos/cover.webp", got)

	got, err = p.URL(ctx, "https://cdn.test/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.jpg", got)

	got, err = p.URL(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestS3ProviderPresignsURL(t *testing.T) {
	p, err := New(Config{
		Provider:  "s3",
		Bucket:    "media",
		Region:    "eu-west-1",
		Endpoint:  "http://minio.test:9000",
		APIKey:    "key",
		APISecret: "secret",
		URLTTL:    10 * time.Minute,
	})
	require.NoError(t, err)

	got, err := p.URL(context.Background(), "photos/cover.webp")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "minio.test:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/media/photos/cover.webp"))
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "ftp"})
	assert.Error(t, err)

	_, err = New(Config{Provider: "s3"})
	assert.ErrorContains(t, err, "bucket")
}
