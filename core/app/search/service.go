package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"sitesearch/core/logger"
	"sitesearch/core/search"

	"github.com/gertd/go-pluralize"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrQueryTooShort is returned for queries below the configured minimum length
	ErrQueryTooShort = errors.New("search query is too short")
	// ErrUnknownProvider is returned when a provider selection names no registered provider
	ErrUnknownProvider = errors.New("no registered search provider selected")
)

// gate is implemented by providers built on search.Source
type gate interface {
	Available() bool
	Enabled() bool
}

type SearchService struct {
	Logger         logger.Logger
	Registry       *search.Registry
	MinQueryLength int
	plural         *pluralize.Client
}

func NewSearchService(log logger.Logger, registry *search.Registry, minQueryLength int) *SearchService {
	if registry == nil {
		registry = search.NewRegistry()
	}
	return &SearchService{
		Logger:         log,
		Registry:       registry,
		MinQueryLength: minQueryLength,
		plural:         pluralize.NewClient(),
	}
}

// GlobalSearch runs query against the selected providers (all when only is
// empty) and merges their results by relevance. A failing provider fails
// the whole search.
func (s *SearchService) GlobalSearch(ctx context.Context, query string, only []string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	response := &SearchResponse{
		Query:     query,
		Results:   []search.Result{},
		Groups:    []SearchGroup{},
		Providers: []string{},
	}
	if query == "" {
		return response, nil
	}
	if utf8.RuneCountInString(query) < s.MinQueryLength {
		return nil, fmt.Errorf("%w: minimum is %d characters", ErrQueryTooShort, s.MinQueryLength)
	}

	providers, err := s.selectProviders(only)
	if err != nil {
		return nil, err
	}
	lists := make([][]search.Result, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			results, err := p.Search(gctx, query)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Identifier(), err)
			}
			lists[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.Logger.Error("Search failed",
			logger.String("query", query),
			logger.Err(err))
		return nil, err
	}

	for i, p := range providers {
		response.Providers = append(response.Providers, p.Identifier())
		response.Results = append(response.Results, lists[i]...)
		response.Groups = append(response.Groups, SearchGroup{
			Identifier: p.Identifier(),
			Name:       p.DisplayName(),
			Count:      len(lists[i]),
			Summary:    s.plural.Pluralize("result", len(lists[i]), true),
		})
	}
	search.SortByRelevance(response.Results)
	response.Total = len(response.Results)

	return response, nil
}

// Providers describes every registered provider in registration order
func (s *SearchService) Providers() []ProviderInfo {
	all := s.Registry.All()
	out := make([]ProviderInfo, 0, len(all))
	for _, p := range all {
		info := ProviderInfo{
			Identifier: p.Identifier(),
			Name:       p.DisplayName(),
			Available:  true,
			Enabled:    true,
		}
		if g, ok := p.(gate); ok {
			info.Available = g.Available()
			info.Enabled = g.Enabled()
		}
		out = append(out, info)
	}
	return out
}

func (s *SearchService) selectProviders(only []string) ([]search.ResultsProvider, error) {
	var requested, unknown []string
	for _, id := range only {
		if id = strings.TrimSpace(id); id != "" {
			requested = append(requested, id)
		}
	}
	if len(requested) == 0 {
		return s.Registry.All(), nil
	}

	wanted := make(map[string]bool, len(requested))
	for _, id := range requested {
		if _, ok := s.Registry.Get(id); !ok {
			s.Logger.Warn("Search provider not registered",
				logger.String("provider", id))
			unknown = append(unknown, id)
			continue
		}
		wanted[id] = true
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, strings.Join(unknown, ", "))
	}

	var selected []search.ResultsProvider
	for _, p := range s.Registry.All() {
		if wanted[p.Identifier()] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
