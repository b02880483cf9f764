package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	TestimonialID        string    `gorm:"column:testimonial_id;primaryKey;type:uuid" json:"testimonial_id"`
	TestimonialQuote     string    `gorm:"column:testimonial_quote;type:text;not null" json:"testimonial_quote"`
	TestimonialAuthor    string    `gorm:"column:testimonial_author;type:varchar(255);not null" json:"testimonial_author"`
	TestimonialLocation  string    `gorm:"column:testimonial_location;type:varchar(255);not null" json:"testimonial_location"`
	TestimonialIsActive  bool      `gorm:"column:testimonial_is_active;default:true" json:"testimonial_is_active"`
	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time `gorm:"column:testimonial_updated_at;autoUpdateTime" json:"testimonial_updated_at"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == "" {
		m.TestimonialID = uuid.NewString()
	}
	return nil
}
