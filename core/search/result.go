package search

import (
	"sort"
	"time"
)

// Relevance levels assigned by providers
const (
	RelevanceText  = 1 // query found in the description only
	RelevanceTitle = 2 // query found in the title
)

// Result is one matched content item in a uniform shape. Providers fill
// every field before returning it; consumers treat it as read-only.
type Result struct {
	Query     string    `json:"query"`
	Relevance int       `json:"relevance"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Meta      time.Time `json:"meta"`
	Thumb     string    `json:"thumb,omitempty"`
	URL       string    `json:"url"`
	Provider  string    `json:"provider"`
	// Model points back at the matched item for display purposes only
	Model any `json:"model,omitempty"`
}

// NewResult creates a result for query with the given relevance
func NewResult(query string, relevance int) Result {
	return Result{Query: query, Relevance: relevance}
}

// Item is what a content source must expose to become a Result
type Item interface {
	SearchTitle() string
	SearchText() string
	SearchCreatedAt() time.Time
}

// NewItemResult maps item into a Result, scoring relevance on its title.
// URL, Thumb and Provider are left for the caller.
func NewItemResult(query string, item Item) Result {
	result := NewResult(query, Relevance(item.SearchTitle(), query))
	result.Title = item.SearchTitle()
	result.Text = item.SearchText()
	result.Meta = item.SearchCreatedAt()
	result.Model = item
	return result
}

// SortByRelevance orders results by relevance, highest first. The sort is
// stable so results of equal relevance keep their provider order.
func SortByRelevance(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
}
