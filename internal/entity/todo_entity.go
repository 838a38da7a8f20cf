package entity

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Completed bool
	Category  string
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

func (t *Todo) TrashLabel() string {
	return t.Title
}

func (t *Todo) Trashed() (uuid.UUID, *time.Time) {
	return t.Id, t.DeletedAt
}
