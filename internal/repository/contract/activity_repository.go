package contract

import "careerflow-be/internal/entity"

type ActivityRepository interface {
	CrudRepository[entity.ActivityEvent]
}
