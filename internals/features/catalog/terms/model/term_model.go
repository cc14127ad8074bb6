// file: internals/features/catalog/terms/model/term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermModel maps the terms table. (term_program_id, term_number) is unique:
// term numbering restarts per program.
type TermModel struct {
	TermID        uuid.UUID `json:"term_id" gorm:"type:uuid;primaryKey;column:term_id;default:gen_random_uuid()"`
	TermProgramID uuid.UUID `json:"term_program_id" gorm:"type:uuid;not null;column:term_program_id;uniqueIndex:ux_terms_program_number"`
	TermNumber    int       `json:"term_number" gorm:"not null;column:term_number;uniqueIndex:ux_terms_program_number;check:term_number > 0"`
	TermTitle     string    `json:"term_title" gorm:"type:varchar(255);not null;column:term_title"`

	TermCreatedAt time.Time `json:"term_created_at" gorm:"column:term_created_at;autoCreateTime"`
}

func (TermModel) TableName() string { return "terms" }

func (m *TermModel) BeforeCreate(tx *gorm.DB) error {
	if m.TermID == uuid.Nil {
		m.TermID = uuid.New()
	}
	return nil
}
