package dto

import (
	"time"

	"gemilang_backend/internals/features/blog/topics/model"
)

// ============================
// Response DTO
// ============================
type TopicDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Request DTO (create & update pakai bentuk sama)
// ============================
type TopicRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ============================
// Converter
// ============================
func ToTopicDTO(m model.TopicModel) TopicDTO {
	return TopicDTO{
		ID:        m.TopicID,
		Name:      m.TopicName,
		CreatedAt: m.TopicCreatedAt,
	}
}

func ToTopicDTOs(ms []model.TopicModel) []TopicDTO {
	out := make([]TopicDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTopicDTO(m))
	}
	return out
}
