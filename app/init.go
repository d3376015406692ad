package app

import (
	"sitesearch/app/photoalbums"
	"sitesearch/app/posts"
	"sitesearch/core/module"
	"sitesearch/core/search"
)

// AppModules implements module.AppModuleProvider interface
type AppModules struct {
	Links search.LinkResolver
}

// GetAppModules returns the content plugin modules. Their order is the
// order their results rank in on equal relevance.
func (am *AppModules) GetAppModules(deps module.Dependencies) []module.Entry {
	return []module.Entry{
		{Name: "photoalbums", Module: photoalbums.Init(deps, am.Links)},
		{Name: "posts", Module: posts.Init(deps, am.Links)},
	}
}

// NewAppModules creates a new app modules provider
func NewAppModules(links search.LinkResolver) *AppModules {
	return &AppModules{Links: links}
}
