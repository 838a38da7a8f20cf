package mapper

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(e *model.ActivityEvent) *entity.ActivityEvent {
	if e == nil {
		return nil
	}
	return &entity.ActivityEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		Type:      e.Type,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(e *entity.ActivityEvent) *model.ActivityEvent {
	if e == nil {
		return nil
	}
	return &model.ActivityEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		Type:      e.Type,
		Detail:    datatypes.JSONMap(e.Detail),
		CreatedAt: e.CreatedAt,
	}
}
