package module

import (
	"sitesearch/core/config"
	"sitesearch/core/logger"
	"sitesearch/core/plugins"
	"sitesearch/core/search"
	"sitesearch/core/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module is implemented by every core and app module. Optional hooks
// (Init() error, Migrate() error, Routes(*gin.RouterGroup)) are detected
// by the Initializer.
type Module interface {
	GetModels() []any
}

// DefaultModule gives modules a no-op GetModels
type DefaultModule struct{}

// GetModels returns no models
func (DefaultModule) GetModels() []any { return nil }

// Dependencies are handed to every module constructor
type Dependencies struct {
	DB       *gorm.DB
	Router   *gin.RouterGroup
	Logger   logger.Logger
	Config   *config.Config
	Plugins  *plugins.Registry
	Storage  storage.Provider
	Settings search.Settings
	Search   *search.Registry
}

// Entry pairs a module with its name. Modules are initialized in slice order.
type Entry struct {
	Name   string
	Module Module
}
