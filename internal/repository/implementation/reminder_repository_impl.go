package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ReminderRepositoryImpl struct {
	*CrudStore[entity.Reminder, model.Reminder]
	*TrashOps[entity.Reminder, model.Reminder]
}

func NewReminderRepository(db *gorm.DB) contract.ReminderRepository {
	m := mapper.NewReminderMapper()
	return &ReminderRepositoryImpl{
		CrudStore: NewCrudStore[entity.Reminder, model.Reminder](db, m),
		TrashOps:  NewTrashOps[entity.Reminder, model.Reminder](db, m, entity.TrashKindReminder),
	}
}
