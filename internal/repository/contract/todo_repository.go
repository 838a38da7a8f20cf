package contract

import "careerflow-be/internal/entity"

type TodoRepository interface {
	CrudRepository[entity.Todo]
	TrashStore
}
