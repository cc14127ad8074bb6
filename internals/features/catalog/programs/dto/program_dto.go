// file: internals/features/catalog/programs/dto/program_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"katalogku_backend/internals/constants"
	"katalogku_backend/internals/features/catalog/programs/model"
)

// ============================
// Response DTO
// ============================
type ProgramDTO struct {
	ProgramID                 uuid.UUID  `json:"program_id"`
	ProgramTitle              string     `json:"program_title"`
	ProgramDescription        *string    `json:"program_description,omitempty"`
	ProgramPrimaryLanguage    string     `json:"program_primary_language"`
	ProgramAvailableLanguages []string   `json:"program_available_languages"`
	ProgramStatus             string     `json:"program_status"`
	ProgramTopicIDs           []string   `json:"program_topic_ids"`
	ProgramPublishedAt        *time.Time `json:"program_published_at,omitempty"`
	ProgramCreatedAt          time.Time  `json:"program_created_at"`
	ProgramUpdatedAt          time.Time  `json:"program_updated_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateProgramRequest struct {
	ProgramTitle              string   `json:"program_title" validate:"required,min=3,max=255"`
	ProgramDescription        *string  `json:"program_description"`
	ProgramPrimaryLanguage    string   `json:"program_primary_language" validate:"omitempty,bcp47_language_tag"`
	ProgramAvailableLanguages []string `json:"program_available_languages"`
	ProgramTopicIDs           []string `json:"program_topic_ids" validate:"omitempty,dive,uuid"`
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateProgramRequest struct {
	ProgramTitle              *string   `json:"program_title" validate:"omitempty,min=3,max=255"`
	ProgramDescription        *string   `json:"program_description"`
	ProgramPrimaryLanguage    *string   `json:"program_primary_language" validate:"omitempty,bcp47_language_tag"`
	ProgramAvailableLanguages *[]string `json:"program_available_languages"`
	ProgramTopicIDs           *[]string `json:"program_topic_ids" validate:"omitempty,dive,uuid"`
	ProgramStatus             *string   `json:"program_status" validate:"omitempty,oneof=draft scheduled published archived"`
}

// ============================
// Converters
// ============================
func ToProgramDTO(m model.ProgramModel) ProgramDTO {
	return ProgramDTO{
		ProgramID:                 m.ProgramID,
		ProgramTitle:              m.ProgramTitle,
		ProgramDescription:        m.ProgramDescription,
		ProgramPrimaryLanguage:    m.ProgramPrimaryLanguage,
		ProgramAvailableLanguages: m.ProgramAvailableLanguages,
		ProgramStatus:             string(m.ProgramStatus),
		ProgramTopicIDs:           m.ProgramTopicIDs,
		ProgramPublishedAt:        m.ProgramPublishedAt,
		ProgramCreatedAt:          m.ProgramCreatedAt,
		ProgramUpdatedAt:          m.ProgramUpdatedAt,
	}
}

func ToProgramDTOs(ms []model.ProgramModel) []ProgramDTO {
	out := make([]ProgramDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToProgramDTO(m))
	}
	return out
}

func ToProgramModel(req CreateProgramRequest) model.ProgramModel {
	primaryLang := req.ProgramPrimaryLanguage
	if primaryLang == "" {
		primaryLang = "id"
	}
	return model.ProgramModel{
		ProgramTitle:              req.ProgramTitle,
		ProgramDescription:        req.ProgramDescription,
		ProgramPrimaryLanguage:    primaryLang,
		ProgramAvailableLanguages: pq.StringArray(req.ProgramAvailableLanguages),
		ProgramStatus:             constants.StatusDraft,
		ProgramTopicIDs:           pq.StringArray(req.ProgramTopicIDs),
	}
}
