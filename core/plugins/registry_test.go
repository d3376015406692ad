package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryIsAvailable(t *testing.T) {
	r := NewRegistry("Graker.PhotoAlbums", " ", "")

	assert.True(t, r.IsAvailable("Graker.PhotoAlbums"))
	assert.True(t, r.IsAvailable("graker.photoalbums"))
	assert.False(t, r.IsAvailable("RainLab.Blog"))

	r.Register("RainLab.Blog")
	assert.True(t, r.IsAvailable("RainLab.Blog"))
	assert.Equal(t, []string{"Graker.PhotoAlbums", "RainLab.Blog"}, r.Installed())
}

func TestNilRegistryHasNothingInstalled(t *testing.T) {
	var r *Registry
	assert.False(t, r.IsAvailable("Graker.PhotoAlbums"))
}
