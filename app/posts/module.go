package posts

import (
	"sitesearch/app/models"
	"sitesearch/core/logger"
	"sitesearch/core/module"
	"sitesearch/core/search"
)

type Module struct {
	module.DefaultModule
	Provider *Provider
	deps     module.Dependencies
}

// Init creates the blog module. links resolves the post page.
func Init(deps module.Dependencies, links search.LinkResolver) module.Module {
	return &Module{
		Provider: NewProvider(deps.DB, deps.Settings, deps.Plugins, links, deps.Storage),
		deps:     deps,
	}
}

// Migrate creates the posts table when the blog plugin is installed
func (m *Module) Migrate() error {
	if !m.deps.Plugins.IsAvailable(Identifier) {
		m.deps.Logger.Info("blog plugin not installed, skipping migration",
			logger.String("plugin", Identifier))
		return nil
	}
	return m.deps.DB.AutoMigrate(&models.Post{})
}

// Init registers the provider with site search
func (m *Module) Init() error {
	if m.deps.Search != nil {
		m.deps.Search.Register(m.Provider)
	}
	return nil
}

func (m *Module) GetModels() []any {
	return []any{
		&models.Post{},
	}
}
