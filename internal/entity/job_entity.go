package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Title           string
	Company         string
	PostingURL      *string
	Description     *string
	Pay             *string
	WorkAuth        *string
	Location        *string
	Status          string
	ResumeSubmitted bool
	AppliedDate     *time.Time
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}

func (j *Job) TrashLabel() string {
	return fmt.Sprintf("%s at %s", j.Title, j.Company)
}

func (j *Job) Trashed() (uuid.UUID, *time.Time) {
	return j.Id, j.DeletedAt
}
