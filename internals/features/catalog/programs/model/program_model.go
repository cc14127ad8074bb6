// file: internals/features/catalog/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
)

// ProgramModel maps the programs table
type ProgramModel struct {
	ProgramID          uuid.UUID `json:"program_id" gorm:"type:uuid;primaryKey;column:program_id;default:gen_random_uuid()"`
	ProgramTitle       string    `json:"program_title" gorm:"type:varchar(255);not null;column:program_title"`
	ProgramDescription *string   `json:"program_description,omitempty" gorm:"type:text;column:program_description"`

	ProgramPrimaryLanguage    string         `json:"program_primary_language" gorm:"type:varchar(10);not null;default:'id';column:program_primary_language"`
	ProgramAvailableLanguages pq.StringArray `json:"program_available_languages" gorm:"type:text[];column:program_available_languages"`

	ProgramStatus constants.ContentStatus `json:"program_status" gorm:"type:varchar(20);not null;default:'draft';column:program_status"`

	// Unordered set of topic ids. Intentionally no FK: ids may dangle after a
	// topic is deleted (documented tolerance, they just never match a filter).
	ProgramTopicIDs pq.StringArray `json:"program_topic_ids" gorm:"type:uuid[];column:program_topic_ids"`

	// Set once by the first publish event, never rewritten afterwards.
	ProgramPublishedAt *time.Time `json:"program_published_at,omitempty" gorm:"column:program_published_at"`

	ProgramCreatedAt time.Time `json:"program_created_at" gorm:"column:program_created_at;autoCreateTime"`
	ProgramUpdatedAt time.Time `json:"program_updated_at" gorm:"column:program_updated_at;autoUpdateTime"`
}

func (ProgramModel) TableName() string { return "programs" }

// BeforeCreate fills the id when the DB default is unavailable (sqlite tests).
func (m *ProgramModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProgramID == uuid.Nil {
		m.ProgramID = uuid.New()
	}
	if m.ProgramStatus == "" {
		m.ProgramStatus = constants.StatusDraft
	}
	return nil
}
