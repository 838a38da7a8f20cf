package contract

import "careerflow-be/internal/entity"

type UserRepository interface {
	CrudRepository[entity.User]
}
