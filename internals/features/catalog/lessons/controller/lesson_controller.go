// file: internals/features/catalog/lessons/controller/lesson_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
	"katalogku_backend/internals/features/catalog/lessons/dto"
	"katalogku_backend/internals/features/catalog/lessons/model"
	"katalogku_backend/internals/features/catalog/publish"
	TermModel "katalogku_backend/internals/features/catalog/terms/model"
	helper "katalogku_backend/internals/helpers"
	dbtime "katalogku_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// ➕ Create lesson (editor)
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	termID, err := uuid.Parse(req.LessonTermID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson_term_id")
	}

	// term must exist before a lesson can hang off it
	var term TermModel.TermModel
	if err := ctrl.DB.First(&term, "term_id = ?", termID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load term")
	}

	status := constants.StatusDraft
	if req.LessonStatus != "" {
		parsed, err := constants.ParseContentStatus(req.LessonStatus)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		status = parsed
	}
	if err := publish.ValidateScheduling(status, req.LessonPublishAt); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lesson := dto.ToLessonModel(req, termID, status)
	if status == constants.StatusPublished {
		now := dbtime.Now(ctrl.DB)
		lesson.LessonPublishedAt = &now
	}

	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "lesson_number already used in this term")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, "Lesson created", dto.ToLessonDTO(lesson))
}

// ✏️ Update lesson (editor). Status changes go through the transition table;
// the scheduled→published flip on the worker's path never comes through here.
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.LessonTitle != nil {
		lesson.LessonTitle = *req.LessonTitle
	}
	if req.LessonContentType != nil {
		lesson.LessonContentType = *req.LessonContentType
	}
	if req.LessonIsPaid != nil {
		lesson.LessonIsPaid = *req.LessonIsPaid
	}
	if req.LessonPrimaryLanguage != nil {
		lesson.LessonPrimaryLanguage = *req.LessonPrimaryLanguage
	}
	if req.LessonAvailableLanguages != nil {
		lesson.LessonAvailableLanguages = pq.StringArray(*req.LessonAvailableLanguages)
	}
	if req.LessonContentURLs != nil {
		lesson.LessonContentURLs = dto.StringsToJSONMap(*req.LessonContentURLs)
	}
	if req.LessonSubtitleLanguages != nil {
		lesson.LessonSubtitleLanguages = pq.StringArray(*req.LessonSubtitleLanguages)
	}
	if req.LessonSubtitleURLs != nil {
		lesson.LessonSubtitleURLs = dto.StringsToJSONMap(*req.LessonSubtitleURLs)
	}
	if req.LessonPublishAt != nil {
		lesson.LessonPublishAt = req.LessonPublishAt
	}

	if req.LessonStatus != nil {
		target, err := constants.ParseContentStatus(*req.LessonStatus)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if !publish.EditorTransitionAllowed(lesson.LessonStatus, target) {
			return helper.JsonError(c, fiber.StatusConflict,
				"transition "+string(lesson.LessonStatus)+" → "+string(target)+" not allowed")
		}
		if err := publish.ValidateScheduling(target, lesson.LessonPublishAt); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if target == constants.StatusPublished && lesson.LessonPublishedAt == nil {
			now := dbtime.Now(ctrl.DB)
			lesson.LessonPublishedAt = &now
		}
		lesson.LessonStatus = target
	}

	if err := ctrl.DB.Save(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}

	return helper.JsonUpdated(c, "Lesson updated", dto.ToLessonDTO(lesson))
}

// 🔍 Lesson detail
func (ctrl *LessonController) GetLessonByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	return helper.JsonOK(c, "ok", dto.ToLessonDTO(lesson))
}

// 📄 Lessons of a term, ordered by lesson_number
func (ctrl *LessonController) GetLessonsByTerm(c *fiber.Ctx) error {
	termID := c.Query("term_id")
	if termID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "term_id is required")
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	base := ctrl.DB.Model(&model.LessonModel{}).
		Where("lesson_term_id = ?", termID).
		Session(&gorm.Session{})
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var lessons []model.LessonModel
	if err := base.
		Order("lesson_number ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
	}

	return helper.JsonList(c, "ok", dto.ToLessonDTOs(lessons),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🗑️ Delete lesson
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"lesson_id": id})
}
