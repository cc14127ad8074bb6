// file: internals/features/catalog/terms/controller/term_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ProgramModel "katalogku_backend/internals/features/catalog/programs/model"
	"katalogku_backend/internals/features/catalog/terms/dto"
	"katalogku_backend/internals/features/catalog/terms/model"
	helper "katalogku_backend/internals/helpers"
)

var validate = validator.New()

type TermController struct {
	DB *gorm.DB
}

func NewTermController(db *gorm.DB) *TermController {
	return &TermController{DB: db}
}

// ➕ Create term (editor)
func (ctrl *TermController) CreateTerm(c *fiber.Ctx) error {
	var req dto.CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	programID, err := uuid.Parse(req.TermProgramID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_program_id")
	}

	var program ProgramModel.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	term := dto.ToTermModel(req, programID)
	if err := ctrl.DB.Create(&term).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "term_number already used in this program")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create term")
	}

	return helper.JsonCreated(c, "Term created", dto.ToTermDTO(term))
}

// ✏️ Update term
func (ctrl *TermController) UpdateTerm(c *fiber.Ctx) error {
	id := c.Params("id")

	var term model.TermModel
	if err := ctrl.DB.First(&term, "term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load term")
	}

	var req dto.UpdateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.TermNumber != nil {
		term.TermNumber = *req.TermNumber
	}
	if req.TermTitle != nil {
		term.TermTitle = *req.TermTitle
	}

	if err := ctrl.DB.Save(&term).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "term_number already used in this program")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update term")
	}

	return helper.JsonUpdated(c, "Term updated", dto.ToTermDTO(term))
}

// 📄 Terms of a program, ordered by term_number
func (ctrl *TermController) GetTermsByProgram(c *fiber.Ctx) error {
	programID := c.Query("program_id")
	if programID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "program_id is required")
	}

	var terms []model.TermModel
	if err := ctrl.DB.
		Where("term_program_id = ?", programID).
		Order("term_number ASC").
		Find(&terms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load terms")
	}

	return helper.JsonOK(c, "ok", dto.ToTermDTOs(terms))
}

// 🗑️ Delete term
func (ctrl *TermController) DeleteTerm(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.TermModel{}, "term_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete term")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Term not found")
	}

	return helper.JsonDeleted(c, "Term deleted", fiber.Map{"term_id": id})
}
