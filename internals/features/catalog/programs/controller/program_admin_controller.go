// file: internals/features/catalog/programs/controller/program_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
	"katalogku_backend/internals/features/catalog/programs/dto"
	"katalogku_backend/internals/features/catalog/programs/model"
	"katalogku_backend/internals/features/catalog/publish"
	helper "katalogku_backend/internals/helpers"
	dbtime "katalogku_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type ProgramAdminController struct {
	DB *gorm.DB
}

func NewProgramAdminController(db *gorm.DB) *ProgramAdminController {
	return &ProgramAdminController{DB: db}
}

// ➕ Create program (editor). Always starts in draft.
func (ctrl *ProgramAdminController) CreateProgram(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	program := dto.ToProgramModel(req)
	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create program")
	}

	return helper.JsonCreated(c, "Program created", dto.ToProgramDTO(program))
}

// ✏️ Update program (editor). Status changes go through the transition
// table; the worker owns the derived draft/scheduled → published cascade and
// never comes through here.
func (ctrl *ProgramAdminController) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.ProgramTitle != nil {
		program.ProgramTitle = *req.ProgramTitle
	}
	if req.ProgramDescription != nil {
		program.ProgramDescription = req.ProgramDescription
	}
	if req.ProgramPrimaryLanguage != nil {
		program.ProgramPrimaryLanguage = *req.ProgramPrimaryLanguage
	}
	if req.ProgramAvailableLanguages != nil {
		program.ProgramAvailableLanguages = pq.StringArray(*req.ProgramAvailableLanguages)
	}
	if req.ProgramTopicIDs != nil {
		program.ProgramTopicIDs = pq.StringArray(*req.ProgramTopicIDs)
	}

	if req.ProgramStatus != nil {
		target, err := constants.ParseContentStatus(*req.ProgramStatus)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if !publish.EditorTransitionAllowed(program.ProgramStatus, target) {
			return helper.JsonError(c, fiber.StatusConflict,
				"transition "+string(program.ProgramStatus)+" → "+string(target)+" not allowed")
		}
		if target == constants.StatusPublished && program.ProgramPublishedAt == nil {
			now := dbtime.Now(ctrl.DB)
			program.ProgramPublishedAt = &now
		}
		program.ProgramStatus = target
	}

	if err := ctrl.DB.Save(&program).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update program")
	}

	return helper.JsonUpdated(c, "Program updated", dto.ToProgramDTO(program))
}

// 🔍 Program detail (any status)
func (ctrl *ProgramAdminController) GetProgramByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load program")
	}

	return helper.JsonOK(c, "ok", dto.ToProgramDTO(program))
}

// 📄 All programs (admin list, any status, optional ?status= filter)
func (ctrl *ProgramAdminController) GetAllPrograms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	base := ctrl.DB.Model(&model.ProgramModel{})
	if raw := c.Query("status"); raw != "" {
		status, err := constants.ParseContentStatus(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		base = base.Where("program_status = ?", status)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count programs")
	}

	var programs []model.ProgramModel
	if err := base.
		Order("program_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&programs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load programs")
	}

	return helper.JsonList(c, "ok", dto.ToProgramDTOs(programs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🗑️ Delete program
func (ctrl *ProgramAdminController) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.ProgramModel{}, "program_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}

	return helper.JsonDeleted(c, "Program deleted", fiber.Map{"program_id": id})
}
