package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImageModel struct {
	GalleryImageID        string    `gorm:"column:gallery_image_id;primaryKey;type:uuid" json:"gallery_image_id"`
	GalleryImagePath      string    `gorm:"column:gallery_image_path;type:varchar(500);not null" json:"gallery_image_path"`
	GalleryImageCreatedAt time.Time `gorm:"column:gallery_image_created_at;autoCreateTime" json:"gallery_image_created_at"`
	GalleryImageUpdatedAt time.Time `gorm:"column:gallery_image_updated_at;autoUpdateTime" json:"gallery_image_updated_at"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

func (m *GalleryImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.GalleryImageID == "" {
		m.GalleryImageID = uuid.NewString()
	}
	return nil
}
