package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/constants"
	"gemilang_backend/internals/features/blog/posts/dto"
	"gemilang_backend/internals/features/blog/posts/model"
	helper "gemilang_backend/internals/helpers"
	"gemilang_backend/internals/helpers/storage"
)

// PostUserController melayani read path publik (website). Post inactive
// tidak pernah keluar dari sini.
type PostUserController struct {
	DB    *gorm.DB
	Store *storage.Storage
}

func NewPostUserController(db *gorm.DB, store *storage.Storage) *PostUserController {
	return &PostUserController{DB: db, Store: store}
}

// 📄 Listing publik: hanya post aktif, urut tanggal terbaru.
// Filter bahasa opsional via ?lang= (lang tanpa nilai = "en").
func (ctrl *PostUserController) GetPublicPosts(c *fiber.Ctx) error {
	q := ctrl.DB.
		Where("post_is_active = ?", true).
		Order("post_date DESC")

	if c.Context().QueryArgs().Has("lang") {
		lang := constants.NormalizeLanguage(c.Query("lang"))
		if !constants.IsSupportedLanguage(lang) {
			return helper.JsonValidationError(c, map[string][]string{
				"lang": {"harus salah satu dari: en, de, ar, nl, zh, fr, ja"},
			})
		}
		q = q.Where("post_language = ?", lang)
	}

	var posts []model.PostModel
	if err := q.Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	return helper.JsonOK(c, "ok", dto.ToPostListItemDTOs(posts, ctrl.Store.URL))
}

// 🔍 Detail publik by slug (dengan content block urut posisi).
// Post inactive diperlakukan sama seperti tidak ada: 404.
func (ctrl *PostUserController) GetPublicPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.PostModel
	err := ctrl.DB.
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_content_position ASC")
		}).
		Where("post_slug = ? AND post_is_active = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	return helper.JsonOK(c, "ok", dto.ToPostDTO(post, ctrl.Store.URL))
}
