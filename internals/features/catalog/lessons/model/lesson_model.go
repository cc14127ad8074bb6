// file: internals/features/catalog/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
)

// LessonModel maps the lessons table, the smallest publishable unit.
//
// Status doubles as the publish queue: the worker polls for
// lesson_status = 'scheduled' AND lesson_publish_at <= now, there is no
// separate job table.
type LessonModel struct {
	LessonID     uuid.UUID `json:"lesson_id" gorm:"type:uuid;primaryKey;column:lesson_id;default:gen_random_uuid()"`
	LessonTermID uuid.UUID `json:"lesson_term_id" gorm:"type:uuid;not null;column:lesson_term_id;uniqueIndex:ux_lessons_term_number"`
	LessonNumber int       `json:"lesson_number" gorm:"not null;column:lesson_number;uniqueIndex:ux_lessons_term_number;check:lesson_number > 0"`

	LessonTitle       string `json:"lesson_title" gorm:"type:varchar(255);not null;column:lesson_title"`
	LessonContentType string `json:"lesson_content_type" gorm:"type:varchar(50);not null;default:'video';column:lesson_content_type"`
	LessonIsPaid      bool   `json:"lesson_is_paid" gorm:"not null;default:false;column:lesson_is_paid"`

	LessonPrimaryLanguage    string            `json:"lesson_primary_language" gorm:"type:varchar(10);not null;default:'id';column:lesson_primary_language"`
	LessonAvailableLanguages pq.StringArray    `json:"lesson_available_languages" gorm:"type:text[];column:lesson_available_languages"`
	LessonContentURLs        datatypes.JSONMap `json:"lesson_content_urls" gorm:"type:jsonb;column:lesson_content_urls"`
	LessonSubtitleLanguages  pq.StringArray    `json:"lesson_subtitle_languages" gorm:"type:text[];column:lesson_subtitle_languages"`
	LessonSubtitleURLs       datatypes.JSONMap `json:"lesson_subtitle_urls" gorm:"type:jsonb;column:lesson_subtitle_urls"`

	LessonStatus constants.ContentStatus `json:"lesson_status" gorm:"type:varchar(20);not null;default:'draft';column:lesson_status;index:idx_lessons_status_publish_at"`

	// lesson_publish_at: the scheduled release instant (required while
	// scheduled). lesson_published_at: the actual release instant, set once.
	LessonPublishAt   *time.Time `json:"lesson_publish_at,omitempty" gorm:"column:lesson_publish_at;index:idx_lessons_status_publish_at"`
	LessonPublishedAt *time.Time `json:"lesson_published_at,omitempty" gorm:"column:lesson_published_at"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;autoUpdateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	if m.LessonStatus == "" {
		m.LessonStatus = constants.StatusDraft
	}
	return nil
}
