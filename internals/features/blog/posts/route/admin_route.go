package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/blog/posts/controller"
	"gemilang_backend/internals/helpers/storage"
)

// 🔐 Admin only (group pemanggil sudah memasang auth + role check)
func PostAdminRoutes(api fiber.Router, db *gorm.DB, store *storage.Storage) {
	ctrl := controller.NewPostController(db, store)

	admin := api.Group("/posts")
	admin.Get("/", ctrl.GetAllPosts)               // 📄 Semua post
	admin.Get("/grouped", ctrl.GetGroupedPosts)    // 🗂️ Grouping topic -> bahasa
	admin.Get("/prefill", ctrl.GetPrefill)         // 📝 Draft varian bahasa baru
	admin.Get("/:slug", ctrl.GetPostBySlug)        // 🔍 Detail untuk form edit
	admin.Post("/", ctrl.CreatePost)               // ➕ Buat post (multipart)
	admin.Put("/:id", ctrl.UpdatePost)             // ✏️ Ubah post (multipart)
	admin.Patch("/:id/toggle", ctrl.ToggleActive)  // 🔁 Toggle aktif
	admin.Delete("/:id", ctrl.DeletePost)          // 🗑️ Hapus post
}
