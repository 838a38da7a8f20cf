package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type JobRepositoryImpl struct {
	*CrudStore[entity.Job, model.Job]
	*TrashOps[entity.Job, model.Job]
}

func NewJobRepository(db *gorm.DB) contract.JobRepository {
	m := mapper.NewJobMapper()
	return &JobRepositoryImpl{
		CrudStore: NewCrudStore[entity.Job, model.Job](db, m),
		TrashOps:  NewTrashOps[entity.Job, model.Job](db, m, entity.TrashKindJob),
	}
}
