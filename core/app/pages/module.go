package pages

import (
	"errors"
	"io/fs"
	"net/http"

	"sitesearch/core/logger"
	"sitesearch/core/module"

	"github.com/gin-gonic/gin"
)

type Module struct {
	module.DefaultModule
	Index    *Index
	Provider *Provider
	deps     module.Dependencies
}

// Init creates the CMS pages module around a shared page index
func Init(deps module.Dependencies, index *Index) module.Module {
	return &Module{
		Index:    index,
		Provider: NewProvider(index, deps.Settings),
		deps:     deps,
	}
}

// Init loads the pages and registers the pages provider with site search
func (m *Module) Init() error {
	if err := m.Index.Reload(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		m.deps.Logger.Warn("CMS pages directory not found, no pages indexed", logger.Err(err))
	}
	if m.deps.Search != nil {
		m.deps.Search.Register(m.Provider)
	}
	return nil
}

// Routes registers the module routes
func (m *Module) Routes(router *gin.RouterGroup) {
	router.GET("/pages", m.listIncluded)
	router.GET("/components", m.listComponents)
}

// listIncluded godoc
// @Summary CMS pages marked for site search
// @Tags Core/Pages
// @Produce json
// @Success 200 {array} Page
// @Router /pages [get]
func (m *Module) listIncluded(ctx *gin.Context) {
	pages := m.Index.Included()
	if pages == nil {
		pages = []*Page{}
	}
	ctx.JSON(http.StatusOK, pages)
}

// listComponents godoc
// @Summary CMS components registered by site search
// @Tags Core/Pages
// @Produce json
// @Router /components [get]
func (m *Module) listComponents(ctx *gin.Context) {
	type component struct {
		Alias      string              `json:"alias"`
		Details    ComponentDetails    `json:"details"`
		Properties map[string]Property `json:"properties"`
	}
	var out []component
	for alias, c := range Components() {
		out = append(out, component{Alias: alias, Details: c.ComponentDetails(), Properties: c.DefineProperties()})
	}
	ctx.JSON(http.StatusOK, out)
}
