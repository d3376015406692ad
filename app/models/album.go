package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Album is a photo album of the photo-album plugin
type Album struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Title       string         `json:"title" gorm:"type:varchar(255)"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);uniqueIndex"`
	Description string         `json:"description" gorm:"type:text"`
	FrontId     *uint          `json:"front_id"`
	Front       *Photo         `json:"front,omitempty" gorm:"foreignKey:FrontId;constraint:-"`

	// LatestPhoto is filled by the provider, not persisted
	LatestPhoto *Photo `json:"-" gorm:"-"`
}

// TableName returns the table name for the Album model
func (m *Album) TableName() string {
	return "graker_photoalbums_albums"
}

// BeforeCreate derives the slug from the title when none is set
func (m *Album) BeforeCreate(tx *gorm.DB) error {
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	return nil
}

// CoverPath is the album cover: the front photo's image, else the newest photo's
func (m *Album) CoverPath() string {
	if m.Front != nil && m.Front.ImagePath != "" {
		return m.Front.ImagePath
	}
	if m.LatestPhoto != nil {
		return m.LatestPhoto.ImagePath
	}
	return ""
}

func (m *Album) SearchTitle() string         { return m.Title }
func (m *Album) SearchText() string          { return m.Description }
func (m *Album) SearchCreatedAt() time.Time { return m.CreatedAt }
