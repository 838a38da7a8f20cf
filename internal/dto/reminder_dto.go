package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReminderRequest struct {
	JobId        *uuid.UUID `json:"job_id"`
	RemindAt     time.Time  `json:"remind_at" validate:"required"`
	Message      string     `json:"message" validate:"required"`
	ReminderType string     `json:"reminder_type" validate:"omitempty,oneof=follow_up interview deadline custom"`
}

type CreateReminderResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateReminderRequest struct {
	Id           uuid.UUID
	JobId        *uuid.UUID `json:"job_id"`
	RemindAt     *time.Time `json:"remind_at"`
	Message      *string    `json:"message"`
	ReminderType *string    `json:"reminder_type" validate:"omitempty,oneof=follow_up interview deadline custom"`
	Completed    *bool      `json:"completed"`
}

type ReminderResponse struct {
	Id           uuid.UUID  `json:"id"`
	JobId        *uuid.UUID `json:"job_id"`
	RemindAt     time.Time  `json:"remind_at"`
	Message      string     `json:"message"`
	ReminderType string     `json:"reminder_type"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
