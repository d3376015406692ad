package photoalbums

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

// Init creates the photo-album module. links resolves album and photo pages.
func Init(deps module.Dependencies, links search.LinkResolver) module.Module {
	return &Module{
		Provider: NewProvider(deps.DB, deps.Settings, deps.Plugins, links, deps.Storage),
		deps:     deps,
	}
}

// Migrate creates the album tables when the plugin is installed
func (m *Module) Migrate() error {
	if !m.deps.Plugins.IsAvailable(Identifier) {
		m.deps.Logger.Info("photo albums plugin not installed, skipping migration",
			logger.String("plugin", Identifier))
		return nil
	}
	return m.deps.DB.AutoMigrate(m.GetModels()...)
}

// Init registers the provider with site search
func (m *Module) Init() error {
	if m.deps.Search != nil {
		m.deps.Search.Register(m.Provider)
	}
	return nil
}

func (m *Module) GetModels() []any {
	return []any{&models.Album{}, &models.Photo{}}
}
