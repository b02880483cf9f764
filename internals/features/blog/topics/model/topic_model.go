package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicModel mengelompokkan varian multi-bahasa dari satu artikel blog.
type TopicModel struct {
	TopicID        string    `gorm:"column:topic_id;primaryKey;type:uuid" json:"topic_id"`
	TopicName      string    `gorm:"column:topic_name;type:varchar(255);uniqueIndex;not null" json:"topic_name"`
	TopicCreatedAt time.Time `gorm:"column:topic_created_at;autoCreateTime" json:"topic_created_at"`
	TopicUpdatedAt time.Time `gorm:"column:topic_updated_at;autoUpdateTime" json:"topic_updated_at"`
}

func (TopicModel) TableName() string {
	return "topics"
}

func (m *TopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.TopicID == "" {
		m.TopicID = uuid.NewString()
	}
	return nil
}
