package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	*CrudStore[entity.ActivityEvent, model.ActivityEvent]
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		CrudStore: NewCrudStore[entity.ActivityEvent, model.ActivityEvent](db, mapper.NewActivityMapper()),
	}
}
