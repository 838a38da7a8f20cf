package implementation

import (
	"context"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrashOps implements the trash lifecycle for one soft-deletable kind.
// The entity type must implement entity.Trashable through its pointer.
type TrashOps[E any, M any] struct {
	db     *gorm.DB
	mapper EntityMapper[E, M]
	kind   entity.TrashKind
}

func NewTrashOps[E any, M any](db *gorm.DB, mapper EntityMapper[E, M], kind entity.TrashKind) *TrashOps[E, M] {
	return &TrashOps[E, M]{
		db:     db,
		mapper: mapper,
		kind:   kind,
	}
}

func (s *TrashOps[E, M]) SoftDelete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	var m M
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TrashOps[E, M]) Restore(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	var m M
	res := s.db.WithContext(ctx).Unscoped().Model(&m).
		Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userId).
		Update("deleted_at", nil)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TrashOps[E, M]) PermanentDelete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	var m M
	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userId).
		Delete(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TrashOps[E, M]) ListTrashed(ctx context.Context, userId uuid.UUID) ([]entity.TrashRecord, error) {
	var models []*M
	err := s.db.WithContext(ctx).
		Scopes(scope.TrashedOnly).
		Where("user_id = ?", userId).
		Order("deleted_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	records := make([]entity.TrashRecord, 0, len(models))
	for _, m := range models {
		e := s.mapper.ToEntity(m)
		t, ok := any(e).(entity.Trashable)
		if !ok {
			continue
		}
		id, deletedAt := t.Trashed()
		record := entity.TrashRecord{
			Kind:  s.kind,
			Id:    id,
			Label: t.TrashLabel(),
		}
		if deletedAt != nil {
			record.DeletedAt = *deletedAt
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *TrashOps[E, M]) EmptyTrash(ctx context.Context, userId uuid.UUID) (int64, error) {
	var m M
	res := s.db.WithContext(ctx).
		Scopes(scope.TrashedOnly).
		Where("user_id = ?", userId).
		Delete(&m)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
