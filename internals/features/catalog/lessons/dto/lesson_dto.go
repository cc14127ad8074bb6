// file: internals/features/catalog/lessons/dto/lesson_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"katalogku_backend/internals/constants"
	"katalogku_backend/internals/features/catalog/lessons/model"
)

// ============================
// Response DTO
// ============================
type LessonDTO struct {
	LessonID                 uuid.UUID         `json:"lesson_id"`
	LessonTermID             uuid.UUID         `json:"lesson_term_id"`
	LessonNumber             int               `json:"lesson_number"`
	LessonTitle              string            `json:"lesson_title"`
	LessonContentType        string            `json:"lesson_content_type"`
	LessonIsPaid             bool              `json:"lesson_is_paid"`
	LessonPrimaryLanguage    string            `json:"lesson_primary_language"`
	LessonAvailableLanguages []string          `json:"lesson_available_languages"`
	LessonContentURLs        map[string]string `json:"lesson_content_urls"`
	LessonSubtitleLanguages  []string          `json:"lesson_subtitle_languages"`
	LessonSubtitleURLs       map[string]string `json:"lesson_subtitle_urls"`
	LessonStatus             string            `json:"lesson_status"`
	LessonPublishAt          *time.Time        `json:"lesson_publish_at,omitempty"`
	LessonPublishedAt        *time.Time        `json:"lesson_published_at,omitempty"`
	LessonCreatedAt          time.Time         `json:"lesson_created_at"`
	LessonUpdatedAt          time.Time         `json:"lesson_updated_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateLessonRequest struct {
	LessonTermID             string            `json:"lesson_term_id" validate:"required,uuid"`
	LessonNumber             int               `json:"lesson_number" validate:"required,min=1"`
	LessonTitle              string            `json:"lesson_title" validate:"required,min=3,max=255"`
	LessonContentType        string            `json:"lesson_content_type" validate:"omitempty,oneof=video audio article"`
	LessonIsPaid             bool              `json:"lesson_is_paid"`
	LessonPrimaryLanguage    string            `json:"lesson_primary_language" validate:"omitempty,bcp47_language_tag"`
	LessonAvailableLanguages []string          `json:"lesson_available_languages"`
	LessonContentURLs        map[string]string `json:"lesson_content_urls" validate:"omitempty,dive,url"`
	LessonSubtitleLanguages  []string          `json:"lesson_subtitle_languages"`
	LessonSubtitleURLs       map[string]string `json:"lesson_subtitle_urls" validate:"omitempty,dive,url"`
	LessonStatus             string            `json:"lesson_status" validate:"omitempty,oneof=draft scheduled published"`
	LessonPublishAt          *time.Time        `json:"lesson_publish_at"`
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateLessonRequest struct {
	LessonTitle              *string            `json:"lesson_title" validate:"omitempty,min=3,max=255"`
	LessonContentType        *string            `json:"lesson_content_type" validate:"omitempty,oneof=video audio article"`
	LessonIsPaid             *bool              `json:"lesson_is_paid"`
	LessonPrimaryLanguage    *string            `json:"lesson_primary_language" validate:"omitempty,bcp47_language_tag"`
	LessonAvailableLanguages *[]string          `json:"lesson_available_languages"`
	LessonContentURLs        *map[string]string `json:"lesson_content_urls" validate:"omitempty,dive,url"`
	LessonSubtitleLanguages  *[]string          `json:"lesson_subtitle_languages"`
	LessonSubtitleURLs       *map[string]string `json:"lesson_subtitle_urls" validate:"omitempty,dive,url"`
	LessonStatus             *string            `json:"lesson_status" validate:"omitempty,oneof=draft scheduled published archived"`
	LessonPublishAt          *time.Time         `json:"lesson_publish_at"`
}

// ============================
// Converters
// ============================
func ToLessonDTO(m model.LessonModel) LessonDTO {
	return LessonDTO{
		LessonID:                 m.LessonID,
		LessonTermID:             m.LessonTermID,
		LessonNumber:             m.LessonNumber,
		LessonTitle:              m.LessonTitle,
		LessonContentType:        m.LessonContentType,
		LessonIsPaid:             m.LessonIsPaid,
		LessonPrimaryLanguage:    m.LessonPrimaryLanguage,
		LessonAvailableLanguages: m.LessonAvailableLanguages,
		LessonContentURLs:        jsonMapToStrings(m.LessonContentURLs),
		LessonSubtitleLanguages:  m.LessonSubtitleLanguages,
		LessonSubtitleURLs:       jsonMapToStrings(m.LessonSubtitleURLs),
		LessonStatus:             string(m.LessonStatus),
		LessonPublishAt:          m.LessonPublishAt,
		LessonPublishedAt:        m.LessonPublishedAt,
		LessonCreatedAt:          m.LessonCreatedAt,
		LessonUpdatedAt:          m.LessonUpdatedAt,
	}
}

func ToLessonDTOs(ms []model.LessonModel) []LessonDTO {
	out := make([]LessonDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLessonDTO(m))
	}
	return out
}

func ToLessonModel(req CreateLessonRequest, termID uuid.UUID, status constants.ContentStatus) model.LessonModel {
	contentType := req.LessonContentType
	if contentType == "" {
		contentType = "video"
	}
	primaryLang := req.LessonPrimaryLanguage
	if primaryLang == "" {
		primaryLang = "id"
	}
	return model.LessonModel{
		LessonTermID:             termID,
		LessonNumber:             req.LessonNumber,
		LessonTitle:              req.LessonTitle,
		LessonContentType:        contentType,
		LessonIsPaid:             req.LessonIsPaid,
		LessonPrimaryLanguage:    primaryLang,
		LessonAvailableLanguages: pq.StringArray(req.LessonAvailableLanguages),
		LessonContentURLs:        StringsToJSONMap(req.LessonContentURLs),
		LessonSubtitleLanguages:  pq.StringArray(req.LessonSubtitleLanguages),
		LessonSubtitleURLs:       StringsToJSONMap(req.LessonSubtitleURLs),
		LessonStatus:             status,
		LessonPublishAt:          req.LessonPublishAt,
	}
}

func jsonMapToStrings(m datatypes.JSONMap) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func StringsToJSONMap(m map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
