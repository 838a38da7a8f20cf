package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/gorm"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.Contact) *entity.Contact {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Contact{
		Id:            c.Id,
		UserId:        c.UserId,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		CompanyId:     c.CompanyId,
		Role:          c.Role,
		HowMet:        c.HowMet,
		Notes:         c.Notes,
		LastTouchDate: c.LastTouchDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     c.DeletedAt.Valid,
	}
}

func (m *ContactMapper) ToModel(c *entity.Contact) *model.Contact {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Contact{
		Id:            c.Id,
		UserId:        c.UserId,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		CompanyId:     c.CompanyId,
		Role:          c.Role,
		HowMet:        c.HowMet,
		Notes:         c.Notes,
		LastTouchDate: c.LastTouchDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}
