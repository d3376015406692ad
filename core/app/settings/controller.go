package settings

import (
	"errors"
	"net/http"

	"sitesearch/core/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type SettingsController struct {
	Service *SettingsService
}

func NewSettingsController(service *SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

func (c *SettingsController) Routes(router *gin.RouterGroup) {
	router.GET("/settings", c.List)
	router.GET("/settings/:key", c.Get)
	router.PUT("/settings/:key", c.Update)
}

// List godoc
// @Summary List settings
// @Tags Core/Settings
// @Produce json
// @Param group query string false "Only settings of this group"
// @Success 200 {array} SettingResponse
// @Router /settings [get]
func (c *SettingsController) List(ctx *gin.Context) {
	items, err := c.Service.List(ctx.Query("group"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list settings: " + err.Error()})
		return
	}

	response := make([]*SettingResponse, len(items))
	for i, item := range items {
		response[i] = item.ToResponse()
	}
	ctx.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Get a setting by key
// @Tags Core/Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} SettingResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /settings/{key} [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	item, err := c.Service.GetByKey(ctx.Param("key"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Setting not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, item.ToResponse())
}

// Update godoc
// @Summary Create or update a setting
// @Tags Core/Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body UpdateSettingRequest true "New value"
// @Success 200 {object} SettingResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /settings/{key} [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := c.Service.Upsert(ctx.Param("key"), &req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, ErrInvalidValue) {
			ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to save setting: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, item.ToResponse())
}
