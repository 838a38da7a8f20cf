package contract

import "careerflow-be/internal/entity"

type ContactRepository interface {
	CrudRepository[entity.Contact]
	TrashStore
}
