package contract

import (
	"context"

	"careerflow-be/internal/entity"

	"github.com/google/uuid"
)

type LLMConfigRepository interface {
	CrudRepository[entity.LLMConfig]
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
}
