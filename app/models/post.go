package models

import (
	"time"

	"sitesearch/core/search"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Post represents a blog post
type Post struct {
	Id                uint           `json:"id" gorm:"primarykey"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
	Title             string         `json:"title" gorm:"type:varchar(255)"`
	Slug              string         `json:"slug" gorm:"type:varchar(255);uniqueIndex"`
	Excerpt           string         `json:"excerpt" gorm:"type:text"`
	Content           string         `json:"content" gorm:"type:text"`
	Published         bool           `json:"published" gorm:"index"`
	PublishedAt       *time.Time     `json:"published_at" gorm:"index"`
	FeaturedImagePath string         `json:"featured_image_path" gorm:"type:varchar(512)"`
}

// TableName returns the table name for the Post model
func (m *Post) TableName() string {
	return "rainlab_blog_posts"
}

// BeforeCreate derives the slug from the title when none is set
func (m *Post) BeforeCreate(tx *gorm.DB) error {
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	return nil
}

func (m *Post) SearchTitle() string { return m.Title }

// SearchText is the excerpt, or the start of the content without markup
func (m *Post) SearchText() string {
	if m.Excerpt != "" {
		return m.Excerpt
	}
	return search.Excerpt(search.PlainText(m.Content), 200)
}

// SearchCreatedAt is the publication date, falling back to creation
func (m *Post) SearchCreatedAt() time.Time {
	if m.PublishedAt != nil {
		return *m.PublishedAt
	}
	return m.CreatedAt
}
