package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/gallery/dto"
	"gemilang_backend/internals/features/gallery/model"
	helper "gemilang_backend/internals/helpers"
	"gemilang_backend/internals/helpers/storage"
)

type GalleryController struct {
	DB    *gorm.DB
	Store *storage.Storage
}

func NewGalleryController(db *gorm.DB, store *storage.Storage) *GalleryController {
	return &GalleryController{DB: db, Store: store}
}

// 📄 Semua gambar galeri (terbaru dulu)
func (ctrl *GalleryController) GetGalleryImages(c *fiber.Ctx) error {
	var images []model.GalleryImageModel
	if err := ctrl.DB.
		Order("gallery_image_created_at DESC").
		Find(&images).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data galeri")
	}
	return helper.JsonOK(c, "ok", dto.ToGalleryImageDTOs(images, ctrl.Store.URL))
}

// ➕ Upload gambar galeri (multipart, field: image)
func (ctrl *GalleryController) UploadGalleryImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"image": {"gambar wajib diupload"},
		})
	}

	path, err := ctrl.Store.StoreImage("gallery", fileHeader)
	if err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			return helper.JsonValidationError(c, map[string][]string{
				"image": {vErr.Message},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}

	image := model.GalleryImageModel{GalleryImagePath: path}
	if err := ctrl.DB.Create(&image).Error; err != nil {
		// DB gagal: hapus file yang terlanjur ditulis
		if rmErr := ctrl.Store.Remove(path); rmErr != nil {
			log.Println("[WARNING] Gagal menghapus file galeri:", rmErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data galeri")
	}

	return helper.JsonCreated(c, "Gambar berhasil diupload", dto.ToGalleryImageDTO(image, ctrl.Store.URL))
}

// 🗑️ Hapus gambar galeri (file dulu, baru record)
func (ctrl *GalleryController) DeleteGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var image model.GalleryImageModel
	if err := ctrl.DB.First(&image, "gallery_image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data galeri")
	}

	if err := ctrl.Store.Remove(image.GalleryImagePath); err != nil {
		log.Println("[WARNING] Gagal menghapus file galeri:", err)
	}

	if err := ctrl.DB.Delete(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data galeri")
	}
	return helper.JsonDeleted(c, "Gambar berhasil dihapus", dto.ToGalleryImageDTO(image, ctrl.Store.URL))
}
