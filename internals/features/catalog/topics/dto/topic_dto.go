// file: internals/features/catalog/topics/dto/topic_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"katalogku_backend/internals/features/catalog/topics/model"
)

type TopicDTO struct {
	TopicID        uuid.UUID `json:"topic_id"`
	TopicName      string    `json:"topic_name"`
	TopicCreatedAt time.Time `json:"topic_created_at"`
}

type CreateTopicRequest struct {
	TopicName string `json:"topic_name" validate:"required,min=2,max=100"`
}

func ToTopicDTO(m model.TopicModel) TopicDTO {
	return TopicDTO{
		TopicID:        m.TopicID,
		TopicName:      m.TopicName,
		TopicCreatedAt: m.TopicCreatedAt,
	}
}

func ToTopicDTOs(ms []model.TopicModel) []TopicDTO {
	out := make([]TopicDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTopicDTO(m))
	}
	return out
}
