package search

import "sitesearch/core/search"

// SearchResponse is the merged outcome of one site search
type SearchResponse struct {
	Query     string          `json:"query"`     // Search query as run, trimmed
	Total     int             `json:"total"`     // Total results across all providers
	Results   []search.Result `json:"results"`   // Results ranked by relevance
	Groups    []SearchGroup   `json:"groups"`    // Per-provider counts, in registration order
	Providers []string        `json:"providers"` // Providers that were searched
	Duration  string          `json:"duration"`  // Search duration
}

// SearchGroup summarizes the results of one provider
type SearchGroup struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Summary    string `json:"summary"`
}

// ProviderInfo describes a registered provider and whether it currently runs
type ProviderInfo struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Available  bool   `json:"available"`
	Enabled    bool   `json:"enabled"`
}

type SearchRequest struct {
	Query     string `form:"q" example:"trip"`                                  // Search query
	Providers string `form:"providers" example:"Graker.PhotoAlbums,Cms.Pages"` // Comma-separated provider identifiers
}
