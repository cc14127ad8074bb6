// file: internals/features/catalog/topics/controller/topic_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/topics/dto"
	"katalogku_backend/internals/features/catalog/topics/model"
	helper "katalogku_backend/internals/helpers"
)

var validate = validator.New()

type TopicController struct {
	DB *gorm.DB
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db}
}

// ➕ Create topic
func (ctrl *TopicController) CreateTopic(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	topic := model.TopicModel{TopicName: req.TopicName}
	if err := ctrl.DB.Create(&topic).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "topic_name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create topic")
	}

	return helper.JsonCreated(c, "Topic created", dto.ToTopicDTO(topic))
}

// 📄 All topics
func (ctrl *TopicController) GetAllTopics(c *fiber.Ctx) error {
	var topics []model.TopicModel
	if err := ctrl.DB.Order("topic_name ASC").Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load topics")
	}

	return helper.JsonOK(c, "ok", dto.ToTopicDTOs(topics))
}

// 🗑️ Delete topic. Program topic-id sets are NOT scrubbed here: ids are
// allowed to dangle and simply stop matching the catalog filter.
func (ctrl *TopicController) DeleteTopic(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.TopicModel{}, "topic_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete topic")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	return helper.JsonDeleted(c, "Topic deleted", fiber.Map{"topic_id": id})
}
