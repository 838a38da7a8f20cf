package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Name          string
	Email         *string
	Phone         *string
	CompanyId     *uuid.UUID
	Role          *string
	HowMet        *string
	Notes         *string
	LastTouchDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

func (c *Contact) TrashLabel() string {
	return c.Name
}

func (c *Contact) Trashed() (uuid.UUID, *time.Time) {
	return c.Id, c.DeletedAt
}
