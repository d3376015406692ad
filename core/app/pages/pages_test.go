package pages

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"sitesearch/core/logger"
	"sitesearch/core/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingsMap map[string]any

func (m settingsMap) GetSettingString(key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func (m settingsMap) GetSettingBool(key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func file(content string, mod time.Time) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), ModTime: mod}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	jan := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }

	fsys := fstest.MapFS{
		"about.htm": file("---\ntitle: About our trips\nurl: /about\ncomponents: [siteSearchInclude]\n---\n<h1>About</h1><p>Who we are.</p>", jan(2)),
		"contact.htm": file("---\ntitle: Contact\nurl: /contact\ndescription: Plan your next trip with us\ncomponents:\n  siteSearchInclude: {}\n---\n<p>Write us.</p>", jan(5)),
		"hidden.htm": file("---\ntitle: Trip secrets\nurl: /secret\n---\n<p>Not indexed.</p>", jan(3)),
		"faq.md": file("---\ntitle: FAQ\nurl: /faq\ncomponents: siteSearchInclude\n---\nHow long is a trip? <b>Two days.</b>", jan(1)),
		"photoalbums/album.htm": file("---\ntitle: Album\nurl: /album/:slug\ncomponents: [siteSearchInclude]\n---\n<p>Trip album</p>", jan(4)),
		"photoalbums/photo.htm": file("---\ntitle: Photo\nurl: /photo/:id|^[0-9]+$/:slug?\n---\n", jan(4)),
		"broken.htm": file("no front matter", jan(1)),
		"assets/site.css": file("body{}", jan(1)),
	}

	idx := NewIndex(fsys, "https://example.org/", logger.NewNop())
	require.NoError(t, idx.Reload())
	return idx
}

func TestParsePageComponentForms(t *testing.T) {
	page, err := ParsePage("p", []byte("---\r\ntitle: T\r\nurl: /t\r\ncomponents:\r\n  siteSearchInclude:\r\n  blogPosts:\r\n    postsPerPage: 5\r\n---\r\n<p>Hello <i>world</i></p>\r\n"))
	require.NoError(t, err)

	assert.True(t, page.IncludedInSearch())
	assert.True(t, page.Components.Has("blogPosts"))
	assert.Equal(t, 5, page.Components["blogPosts"]["postsPerPage"])
	assert.Equal(t, "Hello world", page.Text)
}

func TestParsePageErrors(t *testing.T) {
	_, err := ParsePage("a", []byte("title: x"))
	assert.ErrorIs(t, err, errNoFrontMatter)

	_, err = ParsePage("b", []byte("---\ntitle: x\n"))
	assert.Error(t, err)

	_, err = ParsePage("c", []byte("---\ntitle: x\n---\n"))
	assert.ErrorContains(t, err, "no url")
}

func TestIndexIncludedOnlyMarkedPages(t *testing.T) {
	idx := newTestIndex(t)

	var names []string
	for _, p := range idx.Included() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"about", "contact", "faq", "photoalbums/album"}, names)

	_, ok := idx.Page("broken")
	assert.False(t, ok)
}

func TestExpandPattern(t *testing.T) {
	tests := []struct {
		pattern string
		params  map[string]string
		want    string
	}{
		{"/", nil, "/"},
		{"/about", nil, "/about"},
		{"/album/:slug", map[string]string{"slug": "summer-trip"}, "/album/summer-trip"},
		{"/photo/:id|^[0-9]+$/:slug?", map[string]string{"id": "7", "slug": "beach"}, "/photo/7/beach"},
		{"/photo/:id|^[0-9]+$/:slug?", map[string]string{"id": "7"}, "/photo/7"},
		{"/blog/:page?1", nil, "/blog/1"},
		{"/tag/:name", map[string]string{"name": "a b/c"}, "/tag/a%20b%2Fc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPattern(tt.pattern, tt.params), tt.pattern)
	}
}

func TestPageURL(t *testing.T) {
	idx := newTestIndex(t)

	assert.Equal(t, "https://example.org/album/winter", idx.PageURL("photoalbums/album", map[string]string{"slug": "winter"}))
	assert.Equal(t, "https://example.org/", idx.PageURL("missing/page", nil))
}

func TestProviderSearch(t *testing.T) {
	p := NewProvider(newTestIndex(t), nil)

	results, err := p.Search(context.Background(), "trip")
	require.NoError(t, err)

	var urls []string
	for _, r := range results {
		urls = append(urls, r.URL)
		assert.Equal(t, Identifier, r.Provider)
		assert.NotNil(t, r.Model)
	}
	// newest first; templates with route parameters and unmarked pages are skipped
	assert.Equal(t, []string{"https://example.org/contact", "https://example.org/about", "https://example.org/faq"}, urls)

	assert.Equal(t, search.RelevanceText, results[0].Relevance)
	assert.Equal(t, "Plan your next trip with us", results[0].Text)
	assert.Equal(t, search.RelevanceTitle, results[1].Relevance)
	assert.Equal(t, "About Who we are.", results[1].Text)
}

func TestProviderDisabledOrBlank(t *testing.T) {
	idx := newTestIndex(t)

	disabled := NewProvider(idx, settingsMap{"cms_pages_enabled": false})
	results, err := disabled.Search(context.Background(), "trip")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	p := NewProvider(idx, settingsMap{"cms_pages_label": "Pages"})
	results, err = p.Search(context.Background(), " ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results, err = p.Search(context.Background(), "no such words")
	require.NoError(t, err)
	assert.Equal(t, []search.Result{}, results)
	assert.Equal(t, "Pages", p.DisplayName())
}

func TestSiteSearchIncludeIsEmptyMarker(t *testing.T) {
	c, ok := Components()[IncludeComponent]
	require.True(t, ok)
	assert.Empty(t, c.DefineProperties())
	assert.NotEmpty(t, c.ComponentDetails().Name)
}
