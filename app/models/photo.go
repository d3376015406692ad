package models

import (
	"time"

	"gorm.io/gorm"
)

// Photo is a single photo inside an album
type Photo struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Title       string         `json:"title" gorm:"type:varchar(255)"`
	Description string         `json:"description" gorm:"type:text"`
	ImagePath   string         `json:"image_path" gorm:"type:varchar(512)"`
	AlbumId     uint           `json:"album_id" gorm:"index"`
	Album       *Album         `json:"album,omitempty" gorm:"foreignKey:AlbumId"`
}

// TableName returns the table name for the Photo model
func (m *Photo) TableName() string {
	return "graker_photoalbums_photos"
}

func (m *Photo) SearchTitle() string         { return m.Title }
func (m *Photo) SearchText() string          { return m.Description }
func (m *Photo) SearchCreatedAt() time.Time { return m.CreatedAt }
