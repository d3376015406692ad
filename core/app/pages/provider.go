package pages

import (
	"context"
	"sort"
	"strings"

	"sitesearch/core/search"
)

// Identifier of the CMS pages content source
const Identifier = "Cms.Pages"

// Provider searches CMS pages that carry the siteSearchInclude marker
type Provider struct {
	search.Source
	index *Index
}

// NewProvider creates the CMS pages provider. Pages ship with the site,
// so the source is always available; it can still be disabled through
// the cms_pages_enabled setting.
func NewProvider(index *Index, settings search.Settings) *Provider {
	return &Provider{
		Source: search.Source{
			ID:           Identifier,
			Prefix:       "cms_pages",
			DefaultLabel: "Page",
			Settings:     settings,
			Availability: search.AlwaysAvailable,
		},
		index: index,
	}
}

// Search matches the query against title, description and page text.
// Pages with route parameters in their URL are templates for other
// content and are never returned on their own.
func (p *Provider) Search(ctx context.Context, query string) ([]search.Result, error) {
	if !p.Open(query) {
		return []search.Result{}, nil
	}

	pages := p.index.Included()
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].ModifiedAt.After(pages[j].ModifiedAt)
	})

	results := []search.Result{}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.Contains(page.URL, ":") {
			continue
		}
		if !search.ContainsFold(page.Title, query) &&
			!search.ContainsFold(page.Description, query) &&
			!search.ContainsFold(page.Text, query) {
			continue
		}

		result := search.NewItemResult(query, page)
		result.URL = p.index.PageURL(page.Name, nil)
		result.Provider = p.ID
		results = append(results, result)
	}

	return results, nil
}
