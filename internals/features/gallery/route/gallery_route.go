package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/gallery/controller"
	"gemilang_backend/internals/helpers/storage"
)

// 🌐 Public (read-only)
func GalleryPublicRoutes(api fiber.Router, db *gorm.DB, store *storage.Storage) {
	ctrl := controller.NewGalleryController(db, store)

	public := api.Group("/gallery")
	public.Get("/", ctrl.GetGalleryImages) // 📄 Semua gambar galeri
}

// 🔐 Admin only (group pemanggil sudah memasang auth + role check)
func GalleryAdminRoutes(api fiber.Router, db *gorm.DB, store *storage.Storage) {
	ctrl := controller.NewGalleryController(db, store)

	admin := api.Group("/gallery")
	admin.Get("/", ctrl.GetGalleryImages)          // 📄 Semua gambar galeri
	admin.Post("/", ctrl.UploadGalleryImage)       // ➕ Upload gambar
	admin.Delete("/:id", ctrl.DeleteGalleryImage)  // 🗑️ Hapus gambar
}
