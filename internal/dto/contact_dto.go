package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name          string     `json:"name" validate:"required"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone"`
	CompanyId     *uuid.UUID `json:"company_id"`
	Role          *string    `json:"role"`
	HowMet        *string    `json:"how_met"`
	Notes         *string    `json:"notes"`
	LastTouchDate *time.Time `json:"last_touch_date"`
}

type CreateContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateContactRequest struct {
	Id            uuid.UUID
	Name          *string    `json:"name"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone"`
	CompanyId     *uuid.UUID `json:"company_id"`
	Role          *string    `json:"role"`
	HowMet        *string    `json:"how_met"`
	Notes         *string    `json:"notes"`
	LastTouchDate *time.Time `json:"last_touch_date"`
}

type ContactResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	CompanyId     *uuid.UUID `json:"company_id"`
	Role          *string    `json:"role"`
	HowMet        *string    `json:"how_met"`
	Notes         *string    `json:"notes"`
	LastTouchDate *time.Time `json:"last_touch_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
