package module

import (
	"sitesearch/core/logger"

	"github.com/gin-gonic/gin"
)

// Initializer runs the Init, Migrate and Routes hooks of modules
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates a module initializer
func NewInitializer(logger logger.Logger) *Initializer {
	return &Initializer{logger: logger}
}

// Initialize migrates, initializes and routes the given modules in order.
// Names must be unique within one call. A module failing a step is logged
// and skipped; the rest continue.
func (i *Initializer) Initialize(entries []Entry, deps Dependencies) []Module {
	var initializedModules []Module
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		name, mod := entry.Name, entry.Module

		if seen[name] {
			i.logger.Error("Duplicate module name, skipping",
				logger.String("module", name))
			continue
		}
		seen[name] = true

		if migrator, ok := mod.(interface{ Migrate() error }); ok {
			if err := migrator.Migrate(); err != nil {
				i.logger.Error("Failed to migrate module",
					logger.String("module", name),
					logger.Err(err))
				continue
			}
		}

		if initModule, ok := mod.(interface{ Init() error }); ok {
			if err := initModule.Init(); err != nil {
				i.logger.Error("Failed to initialize module",
					logger.String("module", name),
					logger.Err(err))
				continue
			}
		}

		if routeModule, ok := mod.(interface{ Routes(*gin.RouterGroup) }); ok && deps.Router != nil {
			routeModule.Routes(deps.Router)
		}

		initializedModules = append(initializedModules, mod)
	}

	return initializedModules
}
