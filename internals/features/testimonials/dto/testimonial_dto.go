package dto

import (
	"time"

	"gemilang_backend/internals/features/testimonials/model"
)

// ============================
// Response DTO
// ============================
type TestimonialDTO struct {
	ID        string    `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateTestimonialRequest struct {
	Quote    string `json:"quote" validate:"required"`
	Author   string `json:"author" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
	IsActive *bool  `json:"is_active"`
}

// ============================
// Update Request DTO (partial: hanya field yang dikirim yang berubah)
// ============================
type UpdateTestimonialRequest struct {
	Quote    *string `json:"quote" validate:"omitempty,min=1"`
	Author   *string `json:"author" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
	IsActive *bool   `json:"is_active"`
}

// ============================
// Converter
// ============================
func ToTestimonialDTO(m model.TestimonialModel) TestimonialDTO {
	return TestimonialDTO{
		ID:        m.TestimonialID,
		Quote:     m.TestimonialQuote,
		Author:    m.TestimonialAuthor,
		Location:  m.TestimonialLocation,
		IsActive:  m.TestimonialIsActive,
		CreatedAt: m.TestimonialCreatedAt,
	}
}

func ToTestimonialDTOs(ms []model.TestimonialModel) []TestimonialDTO {
	out := make([]TestimonialDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTestimonialDTO(m))
	}
	return out
}

func ToTestimonialModel(req CreateTestimonialRequest) model.TestimonialModel {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return model.TestimonialModel{
		TestimonialQuote:    req.Quote,
		TestimonialAuthor:   req.Author,
		TestimonialLocation: req.Location,
		TestimonialIsActive: isActive,
	}
}

// ApplyUpdate menerapkan partial update ke model.
func ApplyUpdate(m *model.TestimonialModel, req UpdateTestimonialRequest) {
	if req.Quote != nil {
		m.TestimonialQuote = *req.Quote
	}
	if req.Author != nil {
		m.TestimonialAuthor = *req.Author
	}
	if req.Location != nil {
		m.TestimonialLocation = *req.Location
	}
	if req.IsActive != nil {
		m.TestimonialIsActive = *req.IsActive
	}
}
