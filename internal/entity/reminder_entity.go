package entity

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	JobId        *uuid.UUID
	RemindAt     time.Time
	Message      string
	ReminderType string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

func (r *Reminder) TrashLabel() string {
	return r.Message
}

func (r *Reminder) Trashed() (uuid.UUID, *time.Time) {
	return r.Id, r.DeletedAt
}
