package search

import "sync"

// Registry holds the results providers taking part in site search, in
// registration order
type Registry struct {
	mu        sync.RWMutex
	providers []ResultsProvider
	index     map[string]int
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a provider. Registering an identifier again replaces the
// earlier provider in place.
func (r *Registry) Register(p ResultsProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[p.Identifier()]; ok {
		r.providers[i] = p
		return
	}
	r.index[p.Identifier()] = len(r.providers)
	r.providers = append(r.providers, p)
}

// Get retrieves a provider by identifier
func (r *Registry) Get(identifier string) (ResultsProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[identifier]
	if !ok {
		return nil, false
	}
	return r.providers[i], true
}

// All returns the providers in registration order
func (r *Registry) All() []ResultsProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ResultsProvider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Identifiers returns the registered identifiers in registration order
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.providers))
	for i, p := range r.providers {
		ids[i] = p.Identifier()
	}
	return ids
}
