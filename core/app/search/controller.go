package search

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"sitesearch/core/types"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Service *SearchService
}

func NewSearchController(service *SearchService) *SearchController {
	return &SearchController{Service: service}
}

func (c *SearchController) Routes(router *gin.RouterGroup) {
	router.GET("/search", c.Search)
	router.GET("/search/providers", c.ListProviders)
}

// Search godoc
// @Summary Site search across all results providers
// @Description Runs the query against CMS pages and installed plugins and ranks the merged results
// @Tags Core/Search
// @Produce json
// @Param q query string true "Search query" example("trip")
// @Param providers query string false "Comma-separated provider identifiers" example("Graker.PhotoAlbums,Cms.Pages")
// @Success 200 {object} search.SearchResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Search query (q) is required"})
		return
	}

	var only []string
	if req.Providers != "" {
		only = strings.Split(req.Providers, ",")
	}

	response, err := c.Service.GlobalSearch(ctx.Request.Context(), req.Query, only)
	if errors.Is(err, ErrQueryTooShort) || errors.Is(err, ErrUnknownProvider) {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Search failed: " + err.Error()})
		return
	}

	response.Duration = time.Since(startTime).String()

	ctx.JSON(http.StatusOK, response)
}

// ListProviders godoc
// @Summary Registered results providers
// @Tags Core/Search
// @Produce json
// @Success 200 {array} search.ProviderInfo
// @Router /search/providers [get]
func (c *SearchController) ListProviders(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Service.Providers())
}
