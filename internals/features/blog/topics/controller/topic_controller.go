package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/features/blog/topics/dto"
	"gemilang_backend/internals/features/blog/topics/model"
	helper "gemilang_backend/internals/helpers"
)

type TopicController struct {
	DB *gorm.DB
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db}
}

// 📄 Semua topic
func (ctrl *TopicController) GetAllTopics(c *fiber.Ctx) error {
	var topics []model.TopicModel
	if err := ctrl.DB.Order("topic_name ASC").Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}
	return helper.JsonOK(c, "ok", dto.ToTopicDTOs(topics))
}

// 🔍 Detail topic
func (ctrl *TopicController) GetTopicByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var topic model.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Topic tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}
	return helper.JsonOK(c, "ok", dto.ToTopicDTO(topic))
}

// ➕ Buat topic (nama harus unik, case-insensitive)
func (ctrl *TopicController) CreateTopic(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	taken, err := ctrl.topicNameTaken(req.Name, "")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nama topic")
	}
	if taken {
		return helper.JsonValidationError(c, map[string][]string{
			"name": {"nama topic sudah dipakai"},
		})
	}

	topic := model.TopicModel{TopicName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&topic).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat topic")
	}
	return helper.JsonCreated(c, "Topic berhasil dibuat", dto.ToTopicDTO(topic))
}

// ✏️ Update topic (unik excluding self)
func (ctrl *TopicController) UpdateTopic(c *fiber.Ctx) error {
	id := c.Params("id")

	var topic model.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Topic tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}

	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	taken, err := ctrl.topicNameTaken(req.Name, topic.TopicID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nama topic")
	}
	if taken {
		return helper.JsonValidationError(c, map[string][]string{
			"name": {"nama topic sudah dipakai"},
		})
	}

	topic.TopicName = strings.TrimSpace(req.Name)
	if err := ctrl.DB.Save(&topic).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update topic")
	}
	return helper.JsonUpdated(c, "Topic berhasil diperbarui", dto.ToTopicDTO(topic))
}

// 🗑️ Hapus topic. Post yang masih mengacu ke topic ini TIDAK ikut terhapus:
// post_topic_id di-set NULL dalam transaksi yang sama.
func (ctrl *TopicController) DeleteTopic(c *fiber.Ctx) error {
	id := c.Params("id")

	var topic model.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Topic tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data topic")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("posts").
			Where("post_topic_id = ?", topic.TopicID).
			Update("post_topic_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&topic).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus topic")
	}

	return helper.JsonDeleted(c, "Topic berhasil dihapus", dto.ToTopicDTO(topic))
}

func (ctrl *TopicController) topicNameTaken(name, excludeID string) (bool, error) {
	q := ctrl.DB.Model(&model.TopicModel{}).
		Where("lower(topic_name) = lower(?)", strings.TrimSpace(name))
	if excludeID != "" {
		q = q.Where("topic_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
