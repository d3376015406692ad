package search

import "context"

// ResultsProvider searches one content source
type ResultsProvider interface {
	// Identifier is the stable key of the content source, e.g. "Graker.PhotoAlbums"
	Identifier() string
	// DisplayName is the human readable label of the source category
	DisplayName() string
	// Search returns the matches for query. An unavailable or disabled
	// source yields no results and no error.
	Search(ctx context.Context, query string) ([]Result, error)
}

// Settings is the configuration surface providers read from.
// Missing keys resolve to the supplied default.
type Settings interface {
	GetSettingString(key string, defaultValue string) string
	GetSettingBool(key string, defaultValue bool) bool
}

// Availability answers whether a content source is installed
type Availability interface {
	IsAvailable(identifier string) bool
}

// AvailabilityFunc adapts a function to Availability
type AvailabilityFunc func(identifier string) bool

// IsAvailable calls f
func (f AvailabilityFunc) IsAvailable(identifier string) bool { return f(identifier) }

// AlwaysAvailable is used by sources that ship with the site itself
var AlwaysAvailable = AvailabilityFunc(func(string) bool { return true })

// LinkResolver builds the absolute URL of a CMS page, filling its route
// parameters from params
type LinkResolver interface {
	PageURL(page string, params map[string]string) string
}
