package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PostContentModel adalah satu blok renderable dari body post
// (h2/h3/p/blockquote pakai text, ul pakai items). Blok di-replace
// seluruhnya setiap kali post di-update, tidak pernah di-merge.
type PostContentModel struct {
	PostContentID       string         `gorm:"column:post_content_id;primaryKey;type:uuid" json:"post_content_id"`
	PostContentPostID   string         `gorm:"column:post_content_post_id;type:uuid;not null;index" json:"post_content_post_id"`
	PostContentPosition int            `gorm:"column:post_content_position;not null" json:"post_content_position"`
	PostContentType     string         `gorm:"column:post_content_type;type:varchar(20);not null" json:"post_content_type"`
	PostContentText     *string        `gorm:"column:post_content_text;type:text" json:"post_content_text"`
	PostContentItems    datatypes.JSON `gorm:"column:post_content_items" json:"post_content_items"`
}

func (PostContentModel) TableName() string {
	return "post_contents"
}

func (m *PostContentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostContentID == "" {
		m.PostContentID = uuid.NewString()
	}
	return nil
}
