package settings

import (
	"sitesearch/core/module"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *SettingsService
	Controller *SettingsController
}

// Init creates the Settings module around the shared service, so every
// provider reads the same store the HTTP endpoints write to
func Init(deps module.Dependencies, service *SettingsService) module.Module {
	if service == nil {
		service = NewSettingsService(deps.DB, deps.Logger)
	}

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: NewSettingsController(service),
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *gin.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	if err := m.DB.AutoMigrate(&Settings{}); err != nil {
		return err
	}
	return m.Service.Seed(defaultSettings())
}

func (m *Module) GetModels() []any {
	return []any{&Settings{}}
}
