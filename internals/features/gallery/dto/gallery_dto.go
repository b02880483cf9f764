package dto

import (
	"time"

	"gemilang_backend/internals/features/gallery/model"
)

// ============================
// Response DTO
// ============================
type GalleryImageDTO struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Converter
// ============================
func ToGalleryImageDTO(m model.GalleryImageModel, urlFor func(string) string) GalleryImageDTO {
	return GalleryImageDTO{
		ID:        m.GalleryImageID,
		Path:      m.GalleryImagePath,
		URL:       urlFor(m.GalleryImagePath),
		CreatedAt: m.GalleryImageCreatedAt,
	}
}

func ToGalleryImageDTOs(ms []model.GalleryImageModel, urlFor func(string) string) []GalleryImageDTO {
	out := make([]GalleryImageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGalleryImageDTO(m, urlFor))
	}
	return out
}
