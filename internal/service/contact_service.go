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

type IContactService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ContactResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ContactResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContactService(uowFactory unitofwork.RepositoryFactory) IContactService {
	return &contactService{
		uowFactory: uowFactory,
	}
}

func (s *contactService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A contact may reference one of the user's saved companies.
	if req.CompanyId != nil {
		company, err := uow.CompanyRepository().FindOne(ctx,
			specification.ByID{ID: *req.CompanyId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, apperror.NotFound("company not found")
		}
	}

	contact := entity.Contact{
		Id:            uuid.New(),
		UserId:        userId,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CompanyId:     req.CompanyId,
		Role:          req.Role,
		HowMet:        req.HowMet,
		Notes:         req.Notes,
		LastTouchDate: req.LastTouchDate,
		CreatedAt:     time.Now(),
	}

	if err := uow.ContactRepository().Create(ctx, &contact); err != nil {
		return nil, err
	}
	return &dto.CreateContactResponse{Id: contact.Id}, nil
}

func (s *contactService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contacts, err := uow.ContactRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		res = append(res, contactResponse(c))
	}
	return res, nil
}

func (s *contactService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := uow.ContactRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NotFound("contact not found")
	}
	return contactResponse(contact), nil
}

func (s *contactService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ContactRepository()

	contact, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NotFound("contact not found")
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = req.Email
	}
	if req.Phone != nil {
		contact.Phone = req.Phone
	}
	if req.CompanyId != nil {
		company, err := uow.CompanyRepository().FindOne(ctx,
			specification.ByID{ID: *req.CompanyId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, apperror.NotFound("company not found")
		}
		contact.CompanyId = req.CompanyId
	}
	if req.Role != nil {
		contact.Role = req.Role
	}
	if req.HowMet != nil {
		contact.HowMet = req.HowMet
	}
	if req.Notes != nil {
		contact.Notes = req.Notes
	}
	if req.LastTouchDate != nil {
		contact.LastTouchDate = req.LastTouchDate
	}
	now := time.Now()
	contact.UpdatedAt = &now

	if err := repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contactResponse(contact), nil
}

func contactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		Id:            c.Id,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		CompanyId:     c.CompanyId,
		Role:          c.Role,
		HowMet:        c.HowMet,
		Notes:         c.Notes,
		LastTouchDate: c.LastTouchDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
