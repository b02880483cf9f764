package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"gemilang_backend/internals/constants"
	"gemilang_backend/internals/features/blog/posts/model"
)

const DateLayout = "2006-01-02"

// ============================
// Content block DTO & input
// ============================

// ContentBlockDTO: h2/h3/p/blockquote pakai text, ul pakai items.
type ContentBlockDTO struct {
	Type  string   `json:"type"`
	Text  *string  `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

type ContentBlockInput struct {
	Type  string   `json:"type" validate:"required,oneof=h2 h3 p ul blockquote"`
	Text  *string  `json:"text"`
	Items []string `json:"items"`
}

// DecodeContents membongkar field form "contents" (JSON string dari client)
// menjadi slice block input. Return field errors kalau JSON rusak atau ada
// type di luar enum. Text/items kosong dibiarkan lolos (form di frontend
// yang mencegahnya, storage layer tidak memaksa).
func DecodeContents(raw string) ([]ContentBlockInput, map[string][]string) {
	if raw == "" {
		return nil, nil
	}

	var blocks []ContentBlockInput
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		return nil, map[string][]string{
			"contents": {"harus berupa JSON array content block"},
		}
	}

	for _, b := range blocks {
		if !constants.IsContentBlockType(b.Type) {
			return nil, map[string][]string{
				"contents": {"type block harus salah satu dari: h2, h3, p, ul, blockquote"},
			}
		}
	}
	return blocks, nil
}

// ============================
// Form input (create & update)
// ============================
type PostForm struct {
	Title           string `json:"title" validate:"required,max=255"`
	Slug            string `json:"slug" validate:"omitempty,max=255"`
	Excerpt         string `json:"excerpt" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Category        string `json:"category" validate:"required,max=100"`
	MetaTitle       string `json:"meta_title" validate:"required,max=255"`
	MetaDescription string `json:"meta_description" validate:"required"`
	Language        string `json:"language" validate:"required,oneof=en de ar nl zh fr ja"`
	TopicID         string `json:"topic_id" validate:"omitempty,uuid"`
	IsActive        bool   `json:"is_active"`

	Contents []ContentBlockInput `json:"-"`
}

// ============================
// Response DTO
// ============================
type PostDTO struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Excerpt         string            `json:"excerpt"`
	Image           *string           `json:"image"`
	ImageURL        string            `json:"image_url"`
	Date            string            `json:"date"`
	Category        string            `json:"category"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	IsActive        bool              `json:"is_active"`
	Language        string            `json:"language"`
	TopicID         *string           `json:"topic_id"`
	Contents        []ContentBlockDTO `json:"contents,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// PostListItemDTO: bentuk ringkas untuk listing publik
// (kolom yang sama dengan select lama di public index).
type PostListItemDTO struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Language string `json:"language"`
}

// PostDraftDTO: hasil prefill untuk form create varian bahasa baru.
// Tidak pernah dipersist — id & slug sengaja kosong.
type PostDraftDTO struct {
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         string            `json:"excerpt"`
	Date            string            `json:"date"`
	Category        string            `json:"category"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	IsActive        bool              `json:"is_active"`
	Language        string            `json:"language"`
	TopicID         *string           `json:"topic_id"`
	Contents        []ContentBlockDTO `json:"contents"`
}

// ============================
// Converter
// ============================

func ToContentBlockDTO(m model.PostContentModel) ContentBlockDTO {
	out := ContentBlockDTO{
		Type: m.PostContentType,
		Text: m.PostContentText,
	}
	if len(m.PostContentItems) > 0 {
		var items []string
		if err := json.Unmarshal(m.PostContentItems, &items); err == nil {
			out.Items = items
		}
	}
	return out
}

func ToContentBlockDTOs(ms []model.PostContentModel) []ContentBlockDTO {
	out := make([]ContentBlockDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToContentBlockDTO(m))
	}
	return out
}

// BlocksToModels mengubah block input menjadi rows post_contents dengan
// position sesuai urutan kiriman client.
func BlocksToModels(postID string, blocks []ContentBlockInput) []model.PostContentModel {
	out := make([]model.PostContentModel, 0, len(blocks))
	for i, b := range blocks {
		row := model.PostContentModel{
			PostContentPostID:   postID,
			PostContentPosition: i,
			PostContentType:     b.Type,
			PostContentText:     b.Text,
		}
		if b.Type == constants.BlockList {
			raw, _ := json.Marshal(b.Items)
			row.PostContentItems = datatypes.JSON(raw)
		}
		out = append(out, row)
	}
	return out
}

// ToPostDTO; urlFor adalah resolver dari asset store (path relatif -> URL publik).
func ToPostDTO(m model.PostModel, urlFor func(string) string) PostDTO {
	imagePath := ""
	if m.PostImage != nil {
		imagePath = *m.PostImage
	}
	return PostDTO{
		ID:              m.PostID,
		Slug:            m.PostSlug,
		Title:           m.PostTitle,
		Excerpt:         m.PostExcerpt,
		Image:           m.PostImage,
		ImageURL:        urlFor(imagePath),
		Date:            m.PostDate.Format(DateLayout),
		Category:        m.PostCategory,
		MetaTitle:       m.PostMetaTitle,
		MetaDescription: m.PostMetaDescription,
		IsActive:        m.PostIsActive,
		Language:        m.PostLanguage,
		TopicID:         m.PostTopicID,
		Contents:        ToContentBlockDTOs(m.Contents),
		CreatedAt:       m.PostCreatedAt,
		UpdatedAt:       m.PostUpdatedAt,
	}
}

func ToPostDTOs(ms []model.PostModel, urlFor func(string) string) []PostDTO {
	out := make([]PostDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPostDTO(m, urlFor))
	}
	return out
}

func ToPostListItemDTO(m model.PostModel, urlFor func(string) string) PostListItemDTO {
	imagePath := ""
	if m.PostImage != nil {
		imagePath = *m.PostImage
	}
	return PostListItemDTO{
		Slug:     m.PostSlug,
		Title:    m.PostTitle,
		Excerpt:  m.PostExcerpt,
		ImageURL: urlFor(imagePath),
		Date:     m.PostDate.Format(DateLayout),
		Category: m.PostCategory,
		Language: m.PostLanguage,
	}
}

func ToPostListItemDTOs(ms []model.PostModel, urlFor func(string) string) []PostListItemDTO {
	out := make([]PostListItemDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPostListItemDTO(m, urlFor))
	}
	return out
}
