package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name          string  `json:"name" validate:"required"`
	About         *string `json:"about"`
	StemSupport   bool    `json:"stem_support"`
	VisaSponsor   bool    `json:"visa_sponsor"`
	EmployeeCount *string `json:"employee_count"`
	Research      *string `json:"research"`
	UserComments  *string `json:"user_comments"`
}

type CreateCompanyResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCompanyRequest struct {
	Id            uuid.UUID
	Name          *string `json:"name"`
	About         *string `json:"about"`
	StemSupport   *bool   `json:"stem_support"`
	VisaSponsor   *bool   `json:"visa_sponsor"`
	EmployeeCount *string `json:"employee_count"`
	Research      *string `json:"research"`
	UserComments  *string `json:"user_comments"`
}

type CompanyResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	About         *string    `json:"about"`
	StemSupport   bool       `json:"stem_support"`
	VisaSponsor   bool       `json:"visa_sponsor"`
	EmployeeCount *string    `json:"employee_count"`
	Research      *string    `json:"research"`
	UserComments  *string    `json:"user_comments"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
