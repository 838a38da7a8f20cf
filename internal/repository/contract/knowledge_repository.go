package contract

import "careerflow-be/internal/entity"

type KnowledgeRepository interface {
	CrudRepository[entity.Knowledge]
	TrashStore
}
