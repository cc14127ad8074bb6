// file: internals/features/catalog/terms/dto/term_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"katalogku_backend/internals/features/catalog/terms/model"
)

// ============================
// Response DTO
// ============================
type TermDTO struct {
	TermID        uuid.UUID `json:"term_id"`
	TermProgramID uuid.UUID `json:"term_program_id"`
	TermNumber    int       `json:"term_number"`
	TermTitle     string    `json:"term_title"`
	TermCreatedAt time.Time `json:"term_created_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateTermRequest struct {
	TermProgramID string `json:"term_program_id" validate:"required,uuid"`
	TermNumber    int    `json:"term_number" validate:"required,min=1"`
	TermTitle     string `json:"term_title" validate:"required,min=3,max=255"`
}

// ============================
// Update Request DTO
// ============================
type UpdateTermRequest struct {
	TermNumber *int    `json:"term_number" validate:"omitempty,min=1"`
	TermTitle  *string `json:"term_title" validate:"omitempty,min=3,max=255"`
}

// ============================
// Converters
// ============================
func ToTermDTO(m model.TermModel) TermDTO {
	return TermDTO{
		TermID:        m.TermID,
		TermProgramID: m.TermProgramID,
		TermNumber:    m.TermNumber,
		TermTitle:     m.TermTitle,
		TermCreatedAt: m.TermCreatedAt,
	}
}

func ToTermDTOs(ms []model.TermModel) []TermDTO {
	out := make([]TermDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTermDTO(m))
	}
	return out
}

func ToTermModel(req CreateTermRequest, programID uuid.UUID) model.TermModel {
	return model.TermModel{
		TermProgramID: programID,
		TermNumber:    req.TermNumber,
		TermTitle:     req.TermTitle,
	}
}
