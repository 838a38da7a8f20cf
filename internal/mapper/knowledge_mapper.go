package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(k *model.Knowledge) *entity.Knowledge {
	if k == nil {
		return nil
	}

	var deletedAt *time.Time
	if k.DeletedAt.Valid {
		t := k.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !k.UpdatedAt.IsZero() {
		t := k.UpdatedAt
		updatedAt = &t
	}

	return &entity.Knowledge{
		Id:        k.Id,
		UserId:    k.UserId,
		Title:     k.Title,
		Content:   k.Content,
		Tags:      k.Tags,
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: k.DeletedAt.Valid,
	}
}

func (m *KnowledgeMapper) ToModel(k *entity.Knowledge) *model.Knowledge {
	if k == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if k.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *k.DeletedAt, Valid: true}
	} else if k.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if k.UpdatedAt != nil {
		updatedAt = *k.UpdatedAt
	}

	return &model.Knowledge{
		Id:        k.Id,
		UserId:    k.UserId,
		Title:     k.Title,
		Content:   k.Content,
		Tags:      datatypes.NewJSONSlice(k.Tags),
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}
