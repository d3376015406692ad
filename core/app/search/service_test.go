package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sitesearch/core/logger"
	"sitesearch/core/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	id      string
	name    string
	results []search.Result
	err     error
	calls   atomic.Int32
}

func (p *fakeProvider) Identifier() string  { return p.id }
func (p *fakeProvider) DisplayName() string { return p.name }

func (p *fakeProvider) Search(_ context.Context, query string) ([]search.Result, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	out := make([]search.Result, len(p.results))
	for i, r := range p.results {
		r.Query = query
		r.Provider = p.id
		out[i] = r
	}
	return out, nil
}

func result(title string, relevance int) search.Result {
	r := search.NewResult("", relevance)
	r.Title = title
	return r
}

func titles(results []search.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func newService(min int, providers ...search.ResultsProvider) *SearchService {
	registry := search.NewRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return NewSearchService(logger.NewNop(), registry, min)
}

func TestGlobalSearchMergesByRelevance(t *testing.T) {
	pages := &fakeProvider{id: "Cms.Pages", name: "Page", results: []search.Result{
		result("About", 1),
		result("Trips", 2),
	}}
	albums := &fakeProvider{id: "Graker.PhotoAlbums", name: "Photoalbums", results: []search.Result{
		result("Winter Trip", 2),
		result("Summer Trip", 2),
		result("Holidays", 1),
	}}

	response, err := newService(2, pages, albums).GlobalSearch(context.Background(), "  trip ", nil)
	require.NoError(t, err)

	assert.Equal(t, "trip", response.Query)
	assert.Equal(t, 5, response.Total)
	assert.Equal(t, []string{"Trips", "Winter Trip", "Summer Trip", "About", "Holidays"}, titles(response.Results))
	assert.Equal(t, []string{"Cms.Pages", "Graker.PhotoAlbums"}, response.Providers)

	require.Len(t, response.Groups, 2)
	assert.Equal(t, SearchGroup{Identifier: "Cms.Pages", Name: "Page", Count: 2, Summary: "2 results"}, response.Groups[0])
	assert.Equal(t, "3 results", response.Groups[1].Summary)
	assert.Equal(t, "trip", response.Results[0].Query)
}

func TestGlobalSearchFailsAsAWhole(t *testing.T) {
	ok := &fakeProvider{id: "Cms.Pages", results: []search.Result{result("About", 2)}}
	broken := &fakeProvider{id: "RainLab.Blog", err: errors.New("database is locked")}

	_, err := newService(2, ok, broken).GlobalSearch(context.Background(), "about", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RainLab.Blog")
	assert.Contains(t, err.Error(), "database is locked")
}

func TestGlobalSearchQueryLength(t *testing.T) {
	p := &fakeProvider{id: "Cms.Pages"}
	svc := newService(3, p)

	_, err := svc.GlobalSearch(context.Background(), "ab", nil)
	assert.ErrorIs(t, err, ErrQueryTooShort)

	response, err := svc.GlobalSearch(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Empty(t, response.Results)
	assert.Zero(t, response.Total)

	assert.Zero(t, p.calls.Load())
}

func TestGlobalSearchOnlySelectedProviders(t *testing.T) {
	pages := &fakeProvider{id: "Cms.Pages", results: []search.Result{result("About", 2)}}
	blog := &fakeProvider{id: "RainLab.Blog", results: []search.Result{result("Post", 2)}}
	svc := newService(2, pages, blog)

	response, err := svc.GlobalSearch(context.Background(), "about", []string{" RainLab.Blog", "Unknown.Plugin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"RainLab.Blog"}, response.Providers)
	assert.Equal(t, []string{"Post"}, titles(response.Results))
	assert.Zero(t, pages.calls.Load())
}

func TestGlobalSearchRejectsSelectionWithoutRegisteredProvider(t *testing.T) {
	pages := &fakeProvider{id: "Cms.Pages", results: []search.Result{result("About", 2)}}
	svc := newService(2, pages)

	_, err := svc.GlobalSearch(context.Background(), "about", []string{"Unknown.Plugin", "Other.Plugin"})
	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "Unknown.Plugin, Other.Plugin")
	assert.Zero(t, pages.calls.Load())

	response, err := svc.GlobalSearch(context.Background(), "about", []string{" ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cms.Pages"}, response.Providers)
}

func TestProvidersReportsGate(t *testing.T) {
	svc := newService(2,
		&fakeProvider{id: "Cms.Pages", name: "Page"},
		&sourceProvider{Source: search.Source{ID: "RainLab.Blog", Prefix: "rainlab_blog", DefaultLabel: "Blog"}},
	)

	infos := svc.Providers()
	require.Len(t, infos, 2)
	assert.Equal(t, ProviderInfo{Identifier: "Cms.Pages", Name: "Page", Available: true, Enabled: true}, infos[0])
	assert.Equal(t, ProviderInfo{Identifier: "RainLab.Blog", Name: "Blog", Available: false, Enabled: true}, infos[1])
}

type sourceProvider struct {
	search.Source
}

func (p *sourceProvider) Search(context.Context, string) ([]search.Result, error) {
	return nil, nil
}

func TestSearchEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	p := &fakeProvider{id: "Cms.Pages", name: "Page", results: []search.Result{result("About", 2)}}
	controller := NewSearchController(newService(2, p))
	engine := gin.New()
	controller.Routes(engine.Group("/api"))

	cases := []struct {
		url    string
		status int
	}{
		{"/api/search?q=about", http.StatusOK},
		{"/api/search", http.StatusBadRequest},
		{"/api/search?q=a", http.StatusBadRequest},
		{"/api/search?q=about&providers=Unknown", http.StatusBadRequest},
		{"/api/search?q=about&providers=Cms.Pages", http.StatusOK},
		{"/api/search/providers", http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))
		assert.Equal(t, tc.status, w.Code, tc.url)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=about", nil))
	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
	assert.NotEmpty(t, response.Duration)

	p.err = errors.New("boom")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=about", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
