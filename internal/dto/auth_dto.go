package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	Id                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	ResumeSummary      *string   `json:"resume_summary"`
	Skills             []string  `json:"skills"`
	Projects           []string  `json:"projects"`
	Education          []string  `json:"education"`
	WorkAuthorization  *string   `json:"work_authorization"`
	VisaStatus         *string   `json:"visa_status"`
	PreviousCompanies  []string  `json:"previous_companies"`
	LocationPreference *string   `json:"location_preference"`
	YearsOfExperience  *int      `json:"years_of_experience"`
	CreatedAt          time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName           *string  `json:"full_name"`
	ResumeSummary      *string  `json:"resume_summary"`
	Skills             []string `json:"skills"`
	Projects           []string `json:"projects"`
	Education          []string `json:"education"`
	WorkAuthorization  *string  `json:"work_authorization"`
	VisaStatus         *string  `json:"visa_status"`
	PreviousCompanies  []string `json:"previous_companies"`
	LocationPreference *string  `json:"location_preference"`
	YearsOfExperience  *int     `json:"years_of_experience"`
}
