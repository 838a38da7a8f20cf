package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type TodoRepositoryImpl struct {
	*CrudStore[entity.Todo, model.Todo]
	*TrashOps[entity.Todo, model.Todo]
}

func NewTodoRepository(db *gorm.DB) contract.TodoRepository {
	m := mapper.NewTodoMapper()
	return &TodoRepositoryImpl{
		CrudStore: NewCrudStore[entity.Todo, model.Todo](db, m),
		TrashOps:  NewTrashOps[entity.Todo, model.Todo](db, m, entity.TrashKindTodo),
	}
}
