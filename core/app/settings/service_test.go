package settings

import (
	"testing"

	"sitesearch/core/logger"
	"sitesearch/core/module"
	"sitesearch/core/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *SettingsService {
	t.Helper()
	return NewSettingsService(testutil.NewDB(t, &Settings{}), logger.NewNop())
}

func ptr[T any](v T) *T { return &v }

func TestGettersFallBackToDefaults(t *testing.T) {
	s := newService(t)

	assert.Equal(t, "Photoalbums", s.GetSettingString("graker_photoalbums_label", "Photoalbums"))
	assert.True(t, s.GetSettingBool("graker_photoalbums_enabled", true))
	assert.Equal(t, 7, s.GetSettingInt("missing", 7))
}

func TestGettersReadStoredValues(t *testing.T) {
	s := newService(t)

	_, err := s.Upsert("graker_photoalbums_enabled", &UpdateSettingRequest{ValueBool: ptr(false)})
	require.NoError(t, err)
	_, err = s.Upsert("graker_photoalbums_label", &UpdateSettingRequest{ValueString: ptr("Gallery")})
	require.NoError(t, err)
	_, err = s.Upsert("search_page_size", &UpdateSettingRequest{ValueInt: ptr(25)})
	require.NoError(t, err)

	assert.False(t, s.GetSettingBool("graker_photoalbums_enabled", true))
	assert.Equal(t, "Gallery", s.GetSettingString("graker_photoalbums_label", "Photoalbums"))
	assert.Equal(t, 25, s.GetSettingInt("search_page_size", 10))
}

func TestGettersSurviveStoreFailure(t *testing.T) {
	// no settings table migrated
	s := NewSettingsService(testutil.NewDB(t), logger.NewNop())

	assert.True(t, s.GetSettingBool("graker_photoalbums_enabled", true))
	assert.Equal(t, "Blog", s.GetSettingString("rainlab_blog_label", "Blog"))
}

func TestUpsertKeepsTypeAndRejectsMismatch(t *testing.T) {
	s := newService(t)

	created, err := s.Upsert("rainlab_blog_enabled", &UpdateSettingRequest{ValueBool: ptr(true), Group: "search"})
	require.NoError(t, err)
	assert.Equal(t, TypeBool, created.Type)

	_, err = s.Upsert("rainlab_blog_enabled", &UpdateSettingRequest{ValueString: ptr("no")})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = s.Upsert("x", &UpdateSettingRequest{Type: "float"})
	assert.Error(t, err)
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	s := newService(t)

	_, err := s.Upsert("cms_pages_label", &UpdateSettingRequest{ValueString: ptr("Pages")})
	require.NoError(t, err)

	require.NoError(t, s.Seed([]Settings{
		{SettingKey: "cms_pages_label", Type: TypeString, ValueString: "Page", Group: "search"},
		{SettingKey: "cms_pages_enabled", Type: TypeBool, ValueBool: true, Group: "search"},
	}))

	assert.Equal(t, "Pages", s.GetSettingString("cms_pages_label", ""))
	assert.True(t, s.GetSettingBool("cms_pages_enabled", false))

	items, err := s.List("search")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestModuleMigrateSeedsSearchDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewSettingsService(db, logger.NewNop())
	mod := Init(module.Dependencies{DB: db, Logger: logger.NewNop()}, service).(*Module)

	require.NoError(t, mod.Migrate())
	require.NoError(t, mod.Migrate())

	assert.True(t, service.GetSettingBool("graker_photoalbums_enabled", false))
	assert.Equal(t, "photoalbums/album", service.GetSettingString("graker_photoalbums_album_page", ""))
	assert.Equal(t, "blog/post", service.GetSettingString("rainlab_blog_posturl", ""))

	items, err := service.List("sitesearch")
	require.NoError(t, err)
	assert.Len(t, items, len(defaultSettings()))
}
