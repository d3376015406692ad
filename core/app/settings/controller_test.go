package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *SettingsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := newService(t)
	r := gin.New()
	NewSettingsController(service).Routes(r.Group("/api"))
	return r, service
}

func TestUpdateAndGetSetting(t *testing.T) {
	r, service := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings/graker_photoalbums_enabled",
		strings.NewReader(`{"value_bool": false, "group": "search"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.False(t, service.GetSettingBool("graker_photoalbums_enabled", true))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings/graker_photoalbums_enabled", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body SettingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "graker_photoalbums_enabled", body.Key)
	assert.Equal(t, false, body.Value)
}

func TestGetMissingSetting(t *testing.T) {
	r, _ := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRejectsInvalidPayload(t *testing.T) {
	r, _ := newRouter(t)

	for _, body := range []string{`{`, `{"type": "float", "value_string": "1"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/x", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
