package implementation

import (
	"context"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	*CrudStore[entity.ChatSession, model.ChatSession]
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		CrudStore: NewCrudStore[entity.ChatSession, model.ChatSession](db, mapper.NewChatSessionMapper()),
		db:        db,
	}
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChatSession{}, id).Error
}

func (r *ChatSessionRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.ChatSession{}).Error
}
