package contract

import "careerflow-be/internal/entity"

type JobRepository interface {
	CrudRepository[entity.Job]
	TrashStore
}
