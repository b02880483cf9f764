package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemilang_backend/internals/features/settings/dto"
	"gemilang_backend/internals/features/settings/model"
	helper "gemilang_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// 📄 Semua settings sebagai map key -> value
func (ctrl *SettingController) GetSettings(c *fiber.Ctx) error {
	var settings []model.SettingModel
	if err := ctrl.DB.Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data settings")
	}
	return helper.JsonOK(c, "ok", dto.ToSettingsMap(settings))
}

// ✏️ Batch upsert settings (satu transaksi, last-write-wins)
func (ctrl *SettingController) UpsertSettings(c *fiber.Ctx) error {
	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rows := dto.ToSettingModels(req)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
		}).Create(&rows).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan settings")
	}

	var settings []model.SettingModel
	if err := ctrl.DB.Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data settings")
	}
	return helper.JsonUpdated(c, "Settings berhasil disimpan", dto.ToSettingsMap(settings))
}
