package contract

import "careerflow-be/internal/entity"

type ReminderRepository interface {
	CrudRepository[entity.Reminder]
	TrashStore
}
