package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/blog/topics/controller"
)

// 🔐 Admin only (group pemanggil sudah memasang auth + role check)
func TopicAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTopicController(db)

	admin := api.Group("/topics")
	admin.Get("/", ctrl.GetAllTopics)      // 📄 Semua topic
	admin.Get("/:id", ctrl.GetTopicByID)   // 🔍 Detail topic
	admin.Post("/", ctrl.CreateTopic)      // ➕ Buat topic
	admin.Put("/:id", ctrl.UpdateTopic)    // ✏️ Ubah topic
	admin.Delete("/:id", ctrl.DeleteTopic) // 🗑️ Hapus topic
}
