// file: internals/features/catalog/programs/controller/program_public_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
	LessonDTO "katalogku_backend/internals/features/catalog/lessons/dto"
	LessonModel "katalogku_backend/internals/features/catalog/lessons/model"
	"katalogku_backend/internals/features/catalog/programs/dto"
	"katalogku_backend/internals/features/catalog/programs/model"
	"katalogku_backend/internals/features/catalog/programs/service"
	TermDTO "katalogku_backend/internals/features/catalog/terms/dto"
	TermModel "katalogku_backend/internals/features/catalog/terms/model"
	helper "katalogku_backend/internals/helpers"
)

type ProgramPublicController struct {
	DB *gorm.DB
}

func NewProgramPublicController(db *gorm.DB) *ProgramPublicController {
	return &ProgramPublicController{DB: db}
}

// 📄 Public catalog: cursor-paginated published programs.
// Query: ?cursor=&limit=&topic_id=
func (ctrl *ProgramPublicController) ListPublishedCatalog(c *fiber.Ctx) error {
	limit := helper.ResolveCursorLimit(c, 20, 100)

	cursor, err := helper.DecodeCursor(c.Query("cursor"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var topicID *uuid.UUID
	if raw := c.Query("topic_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic_id")
		}
		topicID = &parsed
	}

	page, err := service.ListPublishedCatalog(ctrl.DB, cursor, limit, topicID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load catalog")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"data":        dto.ToProgramDTOs(page.Programs),
		"next_cursor": page.NextCursor,
		"total":       page.Total,
	})
}

// 🔍 Public program detail: only published programs with at least one
// published lesson; only published lessons are exposed.
func (ctrl *ProgramPublicController) GetPublishedProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.ProgramModel
	if err := ctrl.DB.
		Where("program_status = ?", constants.StatusPublished).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	visible, err := service.HasPublishedLesson(ctrl.DB, program.ProgramID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}
	if !visible {
		// stored status says published, but nothing is currently watchable
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	var terms []TermModel.TermModel
	if err := ctrl.DB.
		Where("term_program_id = ?", program.ProgramID).
		Order("term_number ASC").
		Find(&terms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load terms")
	}

	termIDs := make([]uuid.UUID, 0, len(terms))
	for _, t := range terms {
		termIDs = append(termIDs, t.TermID)
	}

	var lessons []LessonModel.LessonModel
	if len(termIDs) > 0 {
		if err := ctrl.DB.
			Where("lesson_term_id IN ?", termIDs).
			Where("lesson_status = ?", constants.StatusPublished).
			Order("lesson_number ASC").
			Find(&lessons).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
		}
	}

	lessonsByTerm := make(map[uuid.UUID][]LessonDTO.LessonDTO, len(terms))
	for _, l := range lessons {
		lessonsByTerm[l.LessonTermID] = append(lessonsByTerm[l.LessonTermID], LessonDTO.ToLessonDTO(l))
	}

	type termWithLessons struct {
		TermDTO.TermDTO
		Lessons []LessonDTO.LessonDTO `json:"lessons"`
	}
	termsOut := make([]termWithLessons, 0, len(terms))
	for _, t := range terms {
		ls := lessonsByTerm[t.TermID]
		if ls == nil {
			ls = []LessonDTO.LessonDTO{}
		}
		termsOut = append(termsOut, termWithLessons{TermDTO: TermDTO.ToTermDTO(t), Lessons: ls})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"program": dto.ToProgramDTO(program),
		"terms":   termsOut,
	})
}
