package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/gorm"
)

type TodoMapper struct{}

func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

func (m *TodoMapper) ToEntity(t *model.Todo) *entity.Todo {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		dt := t.DeletedAt.Time
		deletedAt = &dt
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		ut := t.UpdatedAt
		updatedAt = &ut
	}

	return &entity.Todo{
		Id:        t.Id,
		UserId:    t.UserId,
		Title:     t.Title,
		Completed: t.Completed,
		Category:  t.Category,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: t.DeletedAt.Valid,
	}
}

func (m *TodoMapper) ToModel(t *entity.Todo) *model.Todo {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Todo{
		Id:        t.Id,
		UserId:    t.UserId,
		Title:     t.Title,
		Completed: t.Completed,
		Category:  t.Category,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}
