// file: internals/features/catalog/topics/model/topic_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicModel maps the topics table. Programs reference topics by id inside
// program_topic_ids; there is no FK back here.
type TopicModel struct {
	TopicID   uuid.UUID `json:"topic_id" gorm:"type:uuid;primaryKey;column:topic_id;default:gen_random_uuid()"`
	TopicName string    `json:"topic_name" gorm:"type:varchar(100);not null;unique;column:topic_name"`

	TopicCreatedAt time.Time `json:"topic_created_at" gorm:"column:topic_created_at;autoCreateTime"`
}

func (TopicModel) TableName() string { return "topics" }

func (m *TopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.TopicID == uuid.Nil {
		m.TopicID = uuid.New()
	}
	return nil
}
