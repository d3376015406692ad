package photoalbums

import (
	"context"
	"fmt"
	"strconv"

	"sitesearch/app/models"
	"sitesearch/core/search"
	"sitesearch/core/storage"

	"gorm.io/gorm"
)

const (
	// Identifier is the plugin key of the photo-album plugin
	Identifier = "Graker.PhotoAlbums"

	settingsPrefix = "graker_photoalbums"
	defaultLabel   = "Photoalbums"

	defaultAlbumPage = "photoalbums/album"
	defaultPhotoPage = "photoalbums/photo"

	// matchClause narrows rows in SQL; MatchesAny decides the final set
	matchClause = "(LOWER(title) LIKE LOWER(?) ESCAPE '!' OR LOWER(description) LIKE LOWER(?) ESCAPE '!')"
)

// Provider searches albums and photos of the photo-album plugin
type Provider struct {
	search.Source
	db      *gorm.DB
	links   search.LinkResolver
	storage storage.Provider
}

// NewProvider creates the photo-album results provider
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
	}
}

// Search returns matching albums followed by matching photos, each newest first
func (p *Provider) Search(ctx context.Context, query string) ([]search.Result, error) {
	if !p.Open(query) {
		return []search.Result{}, nil
	}

	albums, err := p.albums(ctx, query)
	if err != nil {
		return nil, err
	}
	photos, err := p.photos(ctx, query)
	if err != nil {
		return nil, err
	}

	albumPage := p.SettingString("album_page", defaultAlbumPage)
	photoPage := p.SettingString("photo_page", defaultPhotoPage)

	results := make([]search.Result, 0, len(albums)+len(photos))
	for i := range albums {
		album := &albums[i]
		result := search.NewItemResult(query, album)
		result.Provider = Identifier
		result.URL = p.links.PageURL(albumPage, map[string]string{"slug": album.Slug})
		if result.Thumb, err = p.thumb(ctx, album.CoverPath()); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	for i := range photos {
		photo := &photos[i]
		result := search.NewItemResult(query, photo)
		result.Provider = Identifier
		result.URL = p.links.PageURL(photoPage, photoParams(photo))
		if result.Thumb, err = p.thumb(ctx, photo.ImagePath); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (p *Provider) albums(ctx context.Context, query string) ([]models.Album, error) {
	pattern := search.LikePattern(query)
	var found []models.Album
	err := p.db.WithContext(ctx).
		Where(matchClause, pattern, pattern).
		Preload("Front").
		Order("created_at DESC").
		Order("id DESC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}

	albums := found[:0]
	for _, album := range found {
		if search.MatchesAny(query, album.Title, album.Description) {
			albums = append(albums, album)
		}
	}
	if len(albums) == 0 {
		return albums, nil
	}

	ids := make([]uint, len(albums))
	for i, album := range albums {
		ids[i] = album.Id
	}
	var photos []models.Photo
	err = p.db.WithContext(ctx).
		Where("album_id IN ?", ids).
		Order("created_at DESC").
		Order("id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query album covers: %w", err)
	}

	latest := make(map[uint]*models.Photo, len(albums))
	for i := range photos {
		if _, ok := latest[photos[i].AlbumId]; !ok {
			latest[photos[i].AlbumId] = &photos[i]
		}
	}
	for i := range albums {
		albums[i].LatestPhoto = latest[albums[i].Id]
	}
	return albums, nil
}

func (p *Provider) photos(ctx context.Context, query string) ([]models.Photo, error) {
	pattern := search.LikePattern(query)
	var found []models.Photo
	err := p.db.WithContext(ctx).
		Where(matchClause, pattern, pattern).
		Preload("Album").
		Order("created_at DESC").
		Order("id DESC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}

	photos := found[:0]
	for _, photo := range found {
		if search.MatchesAny(query, photo.Title, photo.Description) {
			photos = append(photos, photo)
		}
	}
	return photos, nil
}

func (p *Provider) thumb(ctx context.Context, path string) (string, error) {
	if path == "" || p.storage == nil {
		return "", nil
	}
	url, err := p.storage.URL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve thumbnail %q: %w", path, err)
	}
	return url, nil
}

func photoParams(photo *models.Photo) map[string]string {
	params := map[string]string{"id": strconv.FormatUint(uint64(photo.Id), 10)}
	if photo.Album != nil {
		params["slug"] = photo.Album.Slug
		params["album_slug"] = photo.Album.Slug
	}
	return params
}
