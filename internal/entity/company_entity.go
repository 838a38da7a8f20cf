package entity

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Name          string
	About         *string
	StemSupport   bool
	VisaSponsor   bool
	EmployeeCount *string
	Research      *string
	UserComments  *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

func (c *Company) TrashLabel() string {
	return c.Name
}

func (c *Company) Trashed() (uuid.UUID, *time.Time) {
	return c.Id, c.DeletedAt
}
