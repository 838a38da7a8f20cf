package contract

import (
	"context"

	"careerflow-be/internal/entity"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	CrudRepository[entity.ChatSession]
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
