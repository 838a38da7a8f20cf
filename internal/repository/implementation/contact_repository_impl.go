package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ContactRepositoryImpl struct {
	*CrudStore[entity.Contact, model.Contact]
	*TrashOps[entity.Contact, model.Contact]
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	m := mapper.NewContactMapper()
	return &ContactRepositoryImpl{
		CrudStore: NewCrudStore[entity.Contact, model.Contact](db, m),
		TrashOps:  NewTrashOps[entity.Contact, model.Contact](db, m, entity.TrashKindContact),
	}
}
