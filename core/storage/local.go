package storage

import (
	"context"
	"strings"
)

type localProvider struct {
	baseURL string
}

// NewLocalProvider serves files below baseURL (e.g. http://host/storage)
func NewLocalProvider(baseURL string) Provider {
	return &localProvider{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *localProvider) URL(_ context.Context, path string) (string, error) {
	if path == "" || isAbsoluteURL(path) {
		return path, nil
	}
	return p.baseURL + "/" + strings.TrimLeft(path, "/"), nil
}
