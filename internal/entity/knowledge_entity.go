package entity

import (
	"time"

	"github.com/google/uuid"
)

type Knowledge struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

func (k *Knowledge) TrashLabel() string {
	return k.Title
}

func (k *Knowledge) Trashed() (uuid.UUID, *time.Time) {
	return k.Id, k.DeletedAt
}
