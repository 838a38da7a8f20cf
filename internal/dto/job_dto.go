package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title           string     `json:"title" validate:"required"`
	Company         string     `json:"company" validate:"required"`
	PostingURL      *string    `json:"posting_url"`
	Description     *string    `json:"description"`
	Pay             *string    `json:"pay"`
	WorkAuth        *string    `json:"work_auth"`
	Location        *string    `json:"location"`
	Status          string     `json:"status" validate:"omitempty,oneof=pending applied interview offer rejected ghosted"`
	ResumeSubmitted bool       `json:"resume_submitted"`
	AppliedDate     *time.Time `json:"applied_date"`
	Notes           *string    `json:"notes"`
}

type CreateJobResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateJobRequest struct {
	Id              uuid.UUID
	Title           *string    `json:"title"`
	Company         *string    `json:"company"`
	PostingURL      *string    `json:"posting_url"`
	Description     *string    `json:"description"`
	Pay             *string    `json:"pay"`
	WorkAuth        *string    `json:"work_auth"`
	Location        *string    `json:"location"`
	Status          *string    `json:"status" validate:"omitempty,oneof=pending applied interview offer rejected ghosted"`
	ResumeSubmitted *bool      `json:"resume_submitted"`
	AppliedDate     *time.Time `json:"applied_date"`
	Notes           *string    `json:"notes"`
}

type ListJobsQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

type JobResponse struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	PostingURL      *string    `json:"posting_url"`
	Description     *string    `json:"description"`
	Pay             *string    `json:"pay"`
	WorkAuth        *string    `json:"work_auth"`
	Location        *string    `json:"location"`
	Status          string     `json:"status"`
	ResumeSubmitted bool       `json:"resume_submitted"`
	AppliedDate     *time.Time `json:"applied_date"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}
