package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CompanyRepositoryImpl struct {
	*CrudStore[entity.Company, model.Company]
	*TrashOps[entity.Company, model.Company]
}

func NewCompanyRepository(db *gorm.DB) contract.CompanyRepository {
	m := mapper.NewCompanyMapper()
	return &CompanyRepositoryImpl{
		CrudStore: NewCrudStore[entity.Company, model.Company](db, m),
		TrashOps:  NewTrashOps[entity.Company, model.Company](db, m, entity.TrashKindCompany),
	}
}
