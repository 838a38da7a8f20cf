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

type ChatMessageRawRepositoryImpl struct {
	*CrudStore[entity.ChatMessageRaw, model.ChatMessageRaw]
	db *gorm.DB
}

func NewChatMessageRawRepository(db *gorm.DB) contract.ChatMessageRawRepository {
	return &ChatMessageRawRepositoryImpl{
		CrudStore: NewCrudStore[entity.ChatMessageRaw, model.ChatMessageRaw](db, mapper.NewChatMessageRawMapper()),
		db:        db,
	}
}

func (r *ChatMessageRawRepositoryImpl) DeleteBySessionIds(ctx context.Context, sessionIds []uuid.UUID) error {
	if len(sessionIds) == 0 {
		return nil
	}
	spec := specification.ByChatSessionIDs{ChatSessionIDs: sessionIds}
	return spec.Apply(r.db.WithContext(ctx)).Delete(&model.ChatMessageRaw{}).Error
}
