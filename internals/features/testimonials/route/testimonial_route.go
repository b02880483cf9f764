package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/testimonials/controller"
)

// 🌐 Public (read-only, hanya yang aktif)
func TestimonialPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	public := api.Group("/testimonials")
	public.Get("/", ctrl.GetActiveTestimonials)   // 📄 Testimonial aktif
	public.Get("/:id", ctrl.GetTestimonialByID)   // 🔍 Detail testimonial
}

// 🔐 Admin only (group pemanggil sudah memasang auth + role check)
func TestimonialAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	admin := api.Group("/testimonials")
	admin.Get("/", ctrl.GetAllTestimonials)        // 📄 Semua testimonial
	admin.Get("/:id", ctrl.GetTestimonialByID)     // 🔍 Detail testimonial
	admin.Post("/", ctrl.CreateTestimonial)        // ➕ Buat testimonial
	admin.Put("/:id", ctrl.UpdateTestimonial)      // ✏️ Ubah testimonial (partial)
	admin.Patch("/:id/toggle", ctrl.ToggleActive)  // 🔁 Toggle aktif
	admin.Delete("/:id", ctrl.DeleteTestimonial)   // 🗑️ Hapus testimonial
}
