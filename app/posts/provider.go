package posts

import (
	"context"
	"fmt"
	"time"

	"sitesearch/app/models"
	"sitesearch/core/search"
	"sitesearch/core/storage"

	"gorm.io/gorm"
)

const (
	// Identifier is the plugin key of the blog plugin
	Identifier = "RainLab.Blog"

	settingsPrefix  = "rainlab_blog"
	defaultLabel    = "Blog"
	defaultPostPage = "blog/post"
)

// Provider searches published blog posts
type Provider struct {
	search.Source
	db      *gorm.DB
	links   search.LinkResolver
	storage storage.Provider
	now     func() time.Time
}

// NewProvider creates the blog results provider
func NewProvider(db *gorm.DB, settings search.Settings, plugins search.Availability, links search.LinkResolver, store storage.Provider) *Provider {
	return &Provider{
		Source: search.Source{
			ID:           Identifier,
			Prefix:       settingsPrefix,
			DefaultLabel: defaultLabel,
			Settings:     settings,
			Availability: plugins,
		},
		db:      db,
		links:   links,
		storage: store,
		now:     time.Now,
	}
}

// Search matches the title, excerpt or content of published posts, newest first
func (p *Provider) Search(ctx context.Context, query string) ([]search.Result, error) {
	if !p.Open(query) {
		return []search.Result{}, nil
	}

	pattern := search.LikePattern(query)

	var found []models.Post
	err := p.db.WithContext(ctx).
		Where("published = ?", true).
		Where("(published_at IS NULL OR published_at <= ?)", p.now()).
		Where("(LOWER(title) LIKE LOWER(?) ESCAPE '!' OR LOWER(excerpt) LIKE LOWER(?) ESCAPE '!' OR LOWER(content) LIKE LOWER(?) ESCAPE '!')",
			pattern, pattern, pattern).
		Order("COALESCE(published_at, created_at) DESC").
		Order("id DESC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	posts := found[:0]
	for _, post := range found {
		if search.MatchesAny(query, post.Title, post.Excerpt, post.Content) {
			posts = append(posts, post)
		}
	}

	page := p.SettingString("posturl", defaultPostPage)

	results := make([]search.Result, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		result := search.NewItemResult(query, post)
		result.Provider = Identifier
		result.URL = p.links.PageURL(page, map[string]string{"slug": post.Slug})
		if post.FeaturedImagePath != "" && p.storage != nil {
			thumb, err := p.storage.URL(ctx, post.FeaturedImagePath)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve featured image %q: %w", post.FeaturedImagePath, err)
			}
			result.Thumb = thumb
		}
		results = append(results, result)
	}

	return results, nil
}
