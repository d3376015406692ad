package plugins

import (
	"sort"
	"strings"
	"sync"
)

// Registry records which content plugins are installed in this deployment.
// Identifiers are compared case-insensitively ("Graker.PhotoAlbums").
type Registry struct {
	mu        sync.RWMutex
	installed map[string]string
}

// NewRegistry creates a registry seeded with the given plugin identifiers
func NewRegistry(identifiers ...string) *Registry {
	r := &Registry{installed: make(map[string]string)}
	for _, id := range identifiers {
		r.Register(id)
	}
	return r
}

// Register marks a plugin as installed
func (r *Registry) Register(identifier string) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return
	}
	r.mu.Lock()
	r.installed[strings.ToLower(identifier)] = identifier
	r.mu.Unlock()
}

// IsAvailable reports whether the plugin is installed
func (r *Registry) IsAvailable(identifier string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.installed[strings.ToLower(identifier)]
	return ok
}

// Installed returns the registered identifiers, sorted
func (r *Registry) Installed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.installed))
	for _, id := range r.installed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
