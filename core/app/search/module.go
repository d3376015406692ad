package search

import (
	"sitesearch/core/module"

	"github.com/gin-gonic/gin"
)

type Module struct {
	module.DefaultModule
	Service    *SearchService
	Controller *SearchController
}

// Init creates the Search module over the shared provider registry that
// content modules register into
func Init(deps module.Dependencies) module.Module {
	minLength := 0
	if deps.Config != nil {
		minLength = deps.Config.SearchMinQueryLength
	}

	service := NewSearchService(deps.Logger, deps.Search, minLength)

	return &Module{
		Service:    service,
		Controller: NewSearchController(service),
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *gin.RouterGroup) {
	m.Controller.Routes(router)
}
