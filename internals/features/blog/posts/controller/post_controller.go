package controller

import (
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/constants"
	"gemilang_backend/internals/features/blog/posts/dto"
	"gemilang_backend/internals/features/blog/posts/model"
	"gemilang_backend/internals/features/blog/posts/service"
	TopicModel "gemilang_backend/internals/features/blog/topics/model"
	helper "gemilang_backend/internals/helpers"
	"gemilang_backend/internals/helpers/storage"
)

// PostController melayani panel admin: CRUD post + content block,
// tampilan grouping per topic/bahasa, dan prefill varian bahasa baru.
type PostController struct {
	DB    *gorm.DB
	Store *storage.Storage
}

func NewPostController(db *gorm.DB, store *storage.Storage) *PostController {
	return &PostController{DB: db, Store: store}
}

// 📄 Semua post (termasuk inactive), urut tanggal terbaru.
func (ctrl *PostController) GetAllPosts(c *fiber.Ctx) error {
	var posts []model.PostModel
	if err := ctrl.DB.Order("post_date DESC").Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}
	return helper.JsonOK(c, "ok", dto.ToPostDTOs(posts, ctrl.Store.URL))
}

// 🗂️ Grouping topic -> bahasa untuk tampilan admin.
func (ctrl *PostController) GetGroupedPosts(c *fiber.Ctx) error {
	var posts []model.PostModel
	if err := ctrl.DB.Order("post_date DESC").Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	var topics []TopicModel.TopicModel
	if err := ctrl.DB.Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}

	return helper.JsonOK(c, "ok", service.GroupByTopicThenLanguage(posts, topics, ctrl.Store.URL))
}

// 📝 Prefill draft varian bahasa baru dari topic
// (?topic_name=...&language=...). Read-only.
func (ctrl *PostController) GetPrefill(c *fiber.Ctx) error {
	topicName := c.Query("topic_name")
	language := c.Query("language")

	fieldErrors := map[string][]string{}
	if topicName == "" {
		fieldErrors["topic_name"] = []string{"wajib diisi"}
	}
	if !isSupportedLanguageParam(language) {
		fieldErrors["language"] = []string{"harus salah satu dari: en, de, ar, nl, zh, fr, ja"}
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var topics []TopicModel.TopicModel
	if err := ctrl.DB.Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}

	var posts []model.PostModel
	err := ctrl.DB.
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_content_position ASC")
		}).
		Find(&posts).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	return helper.JsonOK(c, "ok", service.PrefillFrom(topicName, language, topics, posts))
}

// 🔍 Detail post untuk form edit admin (inactive juga boleh).
func (ctrl *PostController) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.PostModel
	err := ctrl.DB.
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_content_position ASC")
		}).
		Where("post_slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	return helper.JsonOK(c, "ok", dto.ToPostDTO(post, ctrl.Store.URL))
}

// ➕ Buat post (multipart). Post + content blocks dibuat dalam SATU
// transaksi: gagal insert block = rollback semuanya.
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	form, fieldErrors := parsePostForm(c)
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	slug, fieldErrors, err := ctrl.resolveSlug(form, "")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek slug")
	}
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	topicID, fieldErrors, err := ctrl.resolveTopic(form.TopicID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek topic")
	}
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	date, _ := time.Parse(dto.DateLayout, form.Date) // sudah divalidasi datetime

	// 🖼️ Simpan gambar dulu (di luar transaksi DB).
	var imagePath *string
	if file, ferr := c.FormFile("imageFile"); ferr == nil && file != nil {
		path, serr := ctrl.storeImage(c, file)
		if serr != nil {
			return serr
		}
		imagePath = &path
	}

	post := model.PostModel{
		PostSlug:            slug,
		PostTitle:           form.Title,
		PostExcerpt:         form.Excerpt,
		PostImage:           imagePath,
		PostDate:            date,
		PostCategory:        form.Category,
		PostMetaTitle:       form.MetaTitle,
		PostMetaDescription: form.MetaDescription,
		PostIsActive:        form.IsActive,
		PostLanguage:        form.Language,
		PostTopicID:         topicID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		if len(form.Contents) > 0 {
			blocks := dto.BlocksToModels(post.PostID, form.Contents)
			if err := tx.Create(&blocks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// File baru jadi yatim kalau dibiarkan; bersihkan best-effort.
		if imagePath != nil {
			if rmErr := ctrl.Store.Remove(*imagePath); rmErr != nil {
				log.Printf("cleanup upload gagal: %v", rmErr)
			}
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat post")
	}

	return ctrl.respondWithPost(c, post.PostID, helper.JsonCreated, "Post berhasil dibuat")
}

// ✏️ Update post. Field + content blocks diganti dalam satu transaksi;
// content blocks SELALU di-replace seluruhnya (delete lalu insert ulang).
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	form, fieldErrors := parsePostForm(c)
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	slug, fieldErrors, err := ctrl.resolveSlug(form, post.PostID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek slug")
	}
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	topicID, fieldErrors, err := ctrl.resolveTopic(form.TopicID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek topic")
	}
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	date, _ := time.Parse(dto.DateLayout, form.Date)

	// 🖼️ Gambar baru DISIMPAN DULU; yang lama baru dihapus setelah
	// transaksi sukses. Upload gagal tidak pernah merusak gambar lama.
	var oldImage *string
	if file, ferr := c.FormFile("imageFile"); ferr == nil && file != nil {
		path, serr := ctrl.storeImage(c, file)
		if serr != nil {
			return serr
		}
		oldImage = post.PostImage
		post.PostImage = &path
	}

	post.PostSlug = slug
	post.PostTitle = form.Title
	post.PostExcerpt = form.Excerpt
	post.PostDate = date
	post.PostCategory = form.Category
	post.PostMetaTitle = form.MetaTitle
	post.PostMetaDescription = form.MetaDescription
	post.PostIsActive = form.IsActive
	post.PostLanguage = form.Language
	post.PostTopicID = topicID

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		if err := tx.Where("post_content_post_id = ?", post.PostID).
			Delete(&model.PostContentModel{}).Error; err != nil {
			return err
		}
		if len(form.Contents) > 0 {
			blocks := dto.BlocksToModels(post.PostID, form.Contents)
			if err := tx.Create(&blocks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update post")
	}

	// Hapus file lama setelah record aman. Gagal hapus = orphan file,
	// dicatat saja, request tetap sukses.
	if oldImage != nil {
		if rmErr := ctrl.Store.Remove(*oldImage); rmErr != nil {
			log.Printf("hapus gambar lama gagal (%s): %v", *oldImage, rmErr)
		}
	}

	return ctrl.respondWithPost(c, post.PostID, helper.JsonUpdated, "Post berhasil diperbarui")
}

// 🔁 Toggle aktif/nonaktif (tidak menyentuh field lain).
func (ctrl *PostController) ToggleActive(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	if err := ctrl.DB.Model(&post).
		Update("post_is_active", !post.PostIsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal toggle status post")
	}
	post.PostIsActive = !post.PostIsActive

	return helper.JsonUpdated(c, "Status post berhasil diubah", dto.ToPostDTO(post, ctrl.Store.URL))
}

// 🗑️ Hapus post: file gambar dihapus best-effort, lalu row + content
// blocks dihapus dalam satu transaksi.
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data post")
	}

	if post.PostImage != nil {
		if rmErr := ctrl.Store.Remove(*post.PostImage); rmErr != nil {
			log.Printf("hapus gambar post gagal (%s): %v", *post.PostImage, rmErr)
		}
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_content_post_id = ?", post.PostID).
			Delete(&model.PostContentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}

	return helper.JsonDeleted(c, "Post berhasil dihapus", dto.ToPostDTO(post, ctrl.Store.URL))
}

/* ===============================
   Internal helpers
=================================*/

// parsePostForm membaca multipart form menjadi input ter-tipe + decode
// content blocks, lalu jalankan validator.
func parsePostForm(c *fiber.Ctx) (*dto.PostForm, map[string][]string) {
	form := &dto.PostForm{
		Title:           c.FormValue("title"),
		Slug:            c.FormValue("slug"),
		Excerpt:         c.FormValue("excerpt"),
		Date:            c.FormValue("date"),
		Category:        c.FormValue("category"),
		MetaTitle:       c.FormValue("meta_title"),
		MetaDescription: c.FormValue("meta_description"),
		Language:        c.FormValue("language"),
		TopicID:         c.FormValue("topic_id"),
	}

	isActiveRaw := c.FormValue("is_active")
	isActive, err := strconv.ParseBool(isActiveRaw)
	if err != nil {
		return nil, map[string][]string{
			"is_active": {"harus berupa boolean"},
		}
	}
	form.IsActive = isActive

	if fieldErrors := helper.ValidateStruct(form); fieldErrors != nil {
		return nil, fieldErrors
	}

	blocks, fieldErrors := dto.DecodeContents(c.FormValue("contents"))
	if fieldErrors != nil {
		return nil, fieldErrors
	}
	form.Contents = blocks

	return form, nil
}

// resolveSlug: pakai slug dari client kalau ada (cek unik, excluding self
// saat update); kalau kosong generate dari title.
func (ctrl *PostController) resolveSlug(form *dto.PostForm, excludeID string) (string, map[string][]string, error) {
	opts := helper.SlugOptions{
		Table:         "posts",
		SlugColumn:    "post_slug",
		ExcludeColumn: "post_id",
		ExcludeID:     excludeID,
		DefaultBase:   "post",
	}

	if form.Slug != "" {
		taken, err := helper.SlugTaken(ctrl.DB, opts, form.Slug)
		if err != nil {
			return "", nil, err
		}
		if taken {
			return "", map[string][]string{"slug": {"slug sudah dipakai"}}, nil
		}
		return form.Slug, nil, nil
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, opts, form.Title)
	if err != nil {
		return "", nil, err
	}
	return slug, nil, nil
}

func (ctrl *PostController) resolveTopic(topicID string) (*string, map[string][]string, error) {
	if topicID == "" {
		return nil, nil, nil
	}
	var cnt int64
	if err := ctrl.DB.Model(&TopicModel.TopicModel{}).
		Where("topic_id = ?", topicID).Count(&cnt).Error; err != nil {
		return nil, nil, err
	}
	if cnt == 0 {
		return nil, map[string][]string{"topic_id": {"topic tidak ditemukan"}}, nil
	}
	return &topicID, nil, nil
}

// storeImage membungkus Asset Store: error validasi jadi 422, error IO 500.
// Return error berarti response sudah ditulis.
func (ctrl *PostController) storeImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	path, err := ctrl.Store.StoreImage("posts", file)
	if err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			return "", helper.JsonValidationError(c, map[string][]string{
				"imageFile": {verr.Message},
			})
		}
		return "", helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}
	return path, nil
}

// respondWithPost memuat ulang post + content blocks supaya response
// konsisten dengan hasil GET by slug.
func (ctrl *PostController) respondWithPost(c *fiber.Ctx, postID string, respond func(*fiber.Ctx, string, any) error, message string) error {
	var post model.PostModel
	err := ctrl.DB.
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_content_position ASC")
		}).
		First(&post, "post_id = ?", postID).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ulang post")
	}
	return respond(c, message, dto.ToPostDTO(post, ctrl.Store.URL))
}

func isSupportedLanguageParam(lang string) bool {
	return lang != "" && constants.IsSupportedLanguage(lang)
}
