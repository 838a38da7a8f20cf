package service

import (
	"context"
	"time"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompanyService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CompanyResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CompanyResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCompanyService(uowFactory unitofwork.RepositoryFactory) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
	}
}

func (s *companyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error) {
	company := entity.Company{
		Id:            uuid.New(),
		UserId:        userId,
		Name:          req.Name,
		About:         req.About,
		StemSupport:   req.StemSupport,
		VisaSponsor:   req.VisaSponsor,
		EmployeeCount: req.EmployeeCount,
		Research:      req.Research,
		UserComments:  req.UserComments,
		CreatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CompanyRepository().Create(ctx, &company); err != nil {
		return nil, err
	}
	return &dto.CreateCompanyResponse{Id: company.Id}, nil
}

func (s *companyService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	companies, err := uow.CompanyRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		res = append(res, companyResponse(c))
	}
	return res, nil
}

func (s *companyService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	company, err := uow.CompanyRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NotFound("company not found")
	}
	return companyResponse(company), nil
}

func (s *companyService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()

	company, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NotFound("company not found")
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.About != nil {
		company.About = req.About
	}
	if req.StemSupport != nil {
		company.StemSupport = *req.StemSupport
	}
	if req.VisaSponsor != nil {
		company.VisaSponsor = *req.VisaSponsor
	}
	if req.EmployeeCount != nil {
		company.EmployeeCount = req.EmployeeCount
	}
	if req.Research != nil {
		company.Research = req.Research
	}
	if req.UserComments != nil {
		company.UserComments = req.UserComments
	}
	now := time.Now()
	company.UpdatedAt = &now

	if err := repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return companyResponse(company), nil
}

func companyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Id:            c.Id,
		Name:          c.Name,
		About:         c.About,
		StemSupport:   c.StemSupport,
		VisaSponsor:   c.VisaSponsor,
		EmployeeCount: c.EmployeeCount,
		Research:      c.Research,
		UserComments:  c.UserComments,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
