package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/testimonials/dto"
	"gemilang_backend/internals/features/testimonials/model"
	helper "gemilang_backend/internals/helpers"
)

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// 📄 Publik: hanya testimonial aktif.
func (ctrl *TestimonialController) GetActiveTestimonials(c *fiber.Ctx) error {
	var testimonials []model.TestimonialModel
	if err := ctrl.DB.
		Where("testimonial_is_active = ?", true).
		Order("testimonial_created_at DESC").
		Find(&testimonials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}
	return helper.JsonOK(c, "ok", dto.ToTestimonialDTOs(testimonials))
}

// 📄 Admin: semua testimonial, termasuk yang nonaktif.
func (ctrl *TestimonialController) GetAllTestimonials(c *fiber.Ctx) error {
	var testimonials []model.TestimonialModel
	if err := ctrl.DB.
		Order("testimonial_created_at DESC").
		Find(&testimonials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}
	return helper.JsonOK(c, "ok", dto.ToTestimonialDTOs(testimonials))
}

// 🔍 Detail testimonial
func (ctrl *TestimonialController) GetTestimonialByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}
	return helper.JsonOK(c, "ok", dto.ToTestimonialDTO(testimonial))
}

// ➕ Buat testimonial
func (ctrl *TestimonialController) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	testimonial := dto.ToTestimonialModel(req)
	if err := ctrl.DB.Create(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat testimonial")
	}
	return helper.JsonCreated(c, "Testimonial berhasil dibuat", dto.ToTestimonialDTO(testimonial))
}

// ✏️ Update testimonial (partial)
func (ctrl *TestimonialController) UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}

	var req dto.UpdateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	dto.ApplyUpdate(&testimonial, req)
	if err := ctrl.DB.Save(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update testimonial")
	}
	return helper.JsonUpdated(c, "Testimonial berhasil diperbarui", dto.ToTestimonialDTO(testimonial))
}

// 🔁 Toggle aktif/nonaktif
func (ctrl *TestimonialController) ToggleActive(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}

	if err := ctrl.DB.Model(&testimonial).
		Update("testimonial_is_active", !testimonial.TestimonialIsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal toggle status testimonial")
	}
	testimonial.TestimonialIsActive = !testimonial.TestimonialIsActive

	return helper.JsonUpdated(c, "Status testimonial berhasil diubah", dto.ToTestimonialDTO(testimonial))
}

// 🗑️ Hapus testimonial
func (ctrl *TestimonialController) DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data testimonial")
	}

	if err := ctrl.DB.Delete(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus testimonial")
	}
	return helper.JsonDeleted(c, "Testimonial berhasil dihapus", dto.ToTestimonialDTO(testimonial))
}
