package contract

import "careerflow-be/internal/entity"

type CompanyRepository interface {
	CrudRepository[entity.Company]
	TrashStore
}
