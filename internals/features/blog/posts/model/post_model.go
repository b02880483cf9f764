package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	TopicModel "gemilang_backend/internals/features/blog/topics/model"
)

// PostModel adalah artikel blog. Satu post = satu bahasa; varian bahasa lain
// dari artikel yang sama dihubungkan lewat topic.
type PostModel struct {
	PostID              string    `gorm:"column:post_id;primaryKey;type:uuid" json:"post_id"`
	PostSlug            string    `gorm:"column:post_slug;type:varchar(255);uniqueIndex;not null" json:"post_slug"`
	PostTitle           string    `gorm:"column:post_title;type:varchar(255);not null" json:"post_title"`
	PostExcerpt         string    `gorm:"column:post_excerpt;type:text;not null" json:"post_excerpt"`
	PostImage           *string   `gorm:"column:post_image;type:text" json:"post_image"`
	PostDate            time.Time `gorm:"column:post_date;type:date;not null" json:"post_date"`
	PostCategory        string    `gorm:"column:post_category;type:varchar(100);not null" json:"post_category"`
	PostMetaTitle       string    `gorm:"column:post_meta_title;type:varchar(255);not null" json:"post_meta_title"`
	PostMetaDescription string    `gorm:"column:post_meta_description;type:text;not null" json:"post_meta_description"`
	PostIsActive        bool      `gorm:"column:post_is_active;default:true" json:"post_is_active"`
	PostLanguage        string    `gorm:"column:post_language;type:varchar(10);default:'en';not null" json:"post_language"`
	PostTopicID         *string   `gorm:"column:post_topic_id;type:uuid" json:"post_topic_id"`

	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt time.Time `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`

	// Relations
	Topic    *TopicModel.TopicModel `gorm:"foreignKey:PostTopicID;references:TopicID;constraint:OnDelete:SET NULL" json:"-"`
	Contents []PostContentModel     `gorm:"foreignKey:PostContentPostID;references:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostID == "" {
		m.PostID = uuid.NewString()
	}
	return nil
}
