package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/gorm"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}

	var deletedAt *time.Time
	if j.DeletedAt.Valid {
		t := j.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	return &entity.Job{
		Id:              j.Id,
		UserId:          j.UserId,
		Title:           j.Title,
		Company:         j.Company,
		PostingURL:      j.PostingURL,
		Description:     j.Description,
		Pay:             j.Pay,
		WorkAuth:        j.WorkAuth,
		Location:        j.Location,
		Status:          j.Status,
		ResumeSubmitted: j.ResumeSubmitted,
		AppliedDate:     j.AppliedDate,
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       j.DeletedAt.Valid,
	}
}

func (m *JobMapper) ToModel(j *entity.Job) *model.Job {
	if j == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if j.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *j.DeletedAt, Valid: true}
	} else if j.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	return &model.Job{
		Id:              j.Id,
		UserId:          j.UserId,
		Title:           j.Title,
		Company:         j.Company,
		PostingURL:      j.PostingURL,
		Description:     j.Description,
		Pay:             j.Pay,
		WorkAuth:        j.WorkAuth,
		Location:        j.Location,
		Status:          j.Status,
		ResumeSubmitted: j.ResumeSubmitted,
		AppliedDate:     j.AppliedDate,
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}
