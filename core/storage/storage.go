package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider turns a stored object path into a URL a browser can load
type Provider interface {
	URL(ctx context.Context, path string) (string, error)
}

// Config selects and configures a storage provider
type Config struct {
	Provider  string
	BaseURL   string
	Bucket    string
	Region    string
	Endpoint  string
	APIKey    string
	APISecret string
	URLTTL    time.Duration
}

// New builds the provider named by cfg.Provider
func New(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "local":
		return NewLocalProvider(cfg.BaseURL), nil
	case "s3":
		return NewS3Provider(S3Config{
			AccessKeyID:     cfg.APIKey,
			AccessKeySecret: cfg.APISecret,
			Endpoint:        cfg.Endpoint,
			Bucket:          cfg.Bucket,
			Region:          cfg.Region,
			TTL:             cfg.URLTTL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}

// isAbsoluteURL reports whether path already is a full URL and needs no resolution
func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "//")
}
