package contract

import (
	"context"

	"careerflow-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	CrudRepository[entity.ChatMessage]
	DeleteBySessionIds(ctx context.Context, sessionIds []uuid.UUID) error
}
