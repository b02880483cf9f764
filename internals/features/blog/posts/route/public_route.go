package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/blog/posts/controller"
	"gemilang_backend/internals/helpers/storage"
)

// 🌐 Public (read-only)
func PostPublicRoutes(api fiber.Router, db *gorm.DB, store *storage.Storage) {
	ctrl := controller.NewPostUserController(db, store)

	public := api.Group("/posts")
	public.Get("/", ctrl.GetPublicPosts)          // 📄 Post aktif (?lang= opsional)
	public.Get("/:slug", ctrl.GetPublicPostBySlug) // 🔍 Detail by slug
}
