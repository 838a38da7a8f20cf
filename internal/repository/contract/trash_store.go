package contract

import (
	"context"

	"careerflow-be/internal/entity"

	"github.com/google/uuid"
)

// TrashStore is the trash lifecycle of one soft-deletable kind. Every
// operation is scoped to the owning user; the bool result reports whether
// a row was actually touched so callers can distinguish "already gone".
type TrashStore interface {
	SoftDelete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
	Restore(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
	PermanentDelete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
	ListTrashed(ctx context.Context, userId uuid.UUID) ([]entity.TrashRecord, error)
	EmptyTrash(ctx context.Context, userId uuid.UUID) (int64, error)
}
