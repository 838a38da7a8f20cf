package mapper

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:                 u.Id,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		FullName:           u.FullName,
		ResumeSummary:      u.ResumeSummary,
		Skills:             u.Skills,
		Projects:           u.Projects,
		Education:          u.Education,
		WorkAuthorization:  u.WorkAuthorization,
		VisaStatus:         u.VisaStatus,
		PreviousCompanies:  u.PreviousCompanies,
		LocationPreference: u.LocationPreference,
		YearsOfExperience:  u.YearsOfExperience,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                 u.Id,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		FullName:           u.FullName,
		ResumeSummary:      u.ResumeSummary,
		Skills:             datatypes.NewJSONSlice(u.Skills),
		Projects:           datatypes.NewJSONSlice(u.Projects),
		Education:          datatypes.NewJSONSlice(u.Education),
		WorkAuthorization:  u.WorkAuthorization,
		VisaStatus:         u.VisaStatus,
		PreviousCompanies:  datatypes.NewJSONSlice(u.PreviousCompanies),
		LocationPreference: u.LocationPreference,
		YearsOfExperience:  u.YearsOfExperience,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
