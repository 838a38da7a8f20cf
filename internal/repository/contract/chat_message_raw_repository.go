package contract

import (
	"context"

	"careerflow-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRawRepository interface {
	CrudRepository[entity.ChatMessageRaw]
	DeleteBySessionIds(ctx context.Context, sessionIds []uuid.UUID) error
}
