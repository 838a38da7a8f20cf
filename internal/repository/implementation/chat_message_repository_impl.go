package implementation

import (
	"context"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"
	"careerflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	*CrudStore[entity.ChatMessage, model.ChatMessage]
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		CrudStore: NewCrudStore[entity.ChatMessage, model.ChatMessage](db, mapper.NewChatMessageMapper()),
		db:        db,
	}
}

func (r *ChatMessageRepositoryImpl) DeleteBySessionIds(ctx context.Context, sessionIds []uuid.UUID) error {
	if len(sessionIds) == 0 {
		return nil
	}
	spec := specification.ByChatSessionIDs{ChatSessionIDs: sessionIds}
	return spec.Apply(r.db.WithContext(ctx)).Delete(&model.ChatMessage{}).Error
}
