package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"

	"gorm.io/gorm"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
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

	return &entity.Company{
		Id:            c.Id,
		UserId:        c.UserId,
		Name:          c.Name,
		About:         c.About,
		StemSupport:   c.StemSupport,
		VisaSponsor:   c.VisaSponsor,
		EmployeeCount: c.EmployeeCount,
		Research:      c.Research,
		UserComments:  c.UserComments,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     c.DeletedAt.Valid,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
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

	return &model.Company{
		Id:            c.Id,
		UserId:        c.UserId,
		Name:          c.Name,
		About:         c.About,
		StemSupport:   c.StemSupport,
		VisaSponsor:   c.VisaSponsor,
		EmployeeCount: c.EmployeeCount,
		Research:      c.Research,
		UserComments:  c.UserComments,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}
