package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/settings/controller"
)

// 🌐 Public (read-only)
func SettingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)

	public := api.Group("/settings")
	public.Get("/", ctrl.GetSettings) // 📄 Semua settings
}

// 🔐 Admin only (group pemanggil sudah memasang auth + role check)
func SettingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)

	admin := api.Group("/settings")
	admin.Get("/", ctrl.GetSettings)     // 📄 Semua settings
	admin.Put("/", ctrl.UpsertSettings)  // ✏️ Batch upsert
}
