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

type LLMConfigRepositoryImpl struct {
	*CrudStore[entity.LLMConfig, model.LLMConfig]
	db *gorm.DB
}

func NewLLMConfigRepository(db *gorm.DB) contract.LLMConfigRepository {
	return &LLMConfigRepositoryImpl{
		CrudStore: NewCrudStore[entity.LLMConfig, model.LLMConfig](db, mapper.NewLLMConfigMapper()),
		db:        db,
	}
}

func (r *LLMConfigRepositoryImpl) DeleteByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.LLMConfig{}).Error
}
