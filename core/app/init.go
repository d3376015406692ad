package app

import (
	"sitesearch/core/app/pages"
	"sitesearch/core/app/search"
	"sitesearch/core/app/settings"
	"sitesearch/core/module"
)

// CoreModules implements module.CoreModuleProvider interface
type CoreModules struct {
	Settings *settings.SettingsService
	Pages    *pages.Index
}

// GetCoreModules returns the core modules in initialization order. Settings
// come first so their defaults exist before any provider reads them.
func (cm *CoreModules) GetCoreModules(deps module.Dependencies) []module.Entry {
	return []module.Entry{
		{Name: "settings", Module: settings.Init(deps, cm.Settings)},
		{Name: "pages", Module: pages.Init(deps, cm.Pages)},
		{Name: "search", Module: search.Init(deps)},
	}
}

// NewCoreModules creates a new core modules provider
func NewCoreModules(settingsService *settings.SettingsService, index *pages.Index) *CoreModules {
	return &CoreModules{
		Settings: settingsService,
		Pages:    index,
	}
}
