package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string

	// Profile fields used to ground AI answers about the user.
	ResumeSummary      *string
	Skills             []string
	Projects           []string
	Education          []string
	WorkAuthorization  *string
	VisaStatus         *string
	PreviousCompanies  []string
	LocationPreference *string
	YearsOfExperience  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
