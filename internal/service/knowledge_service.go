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

type IKnowledgeService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeRequest) (*dto.CreateKnowledgeResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.KnowledgeResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.KnowledgeResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error)
}

type knowledgeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKnowledgeService(uowFactory unitofwork.RepositoryFactory) IKnowledgeService {
	return &knowledgeService{
		uowFactory: uowFactory,
	}
}

func (s *knowledgeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeRequest) (*dto.CreateKnowledgeResponse, error) {
	knowledge := entity.Knowledge{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KnowledgeRepository().Create(ctx, &knowledge); err != nil {
		return nil, err
	}
	return &dto.CreateKnowledgeResponse{Id: knowledge.Id}, nil
}

func (s *knowledgeService) List(ctx context.Context, userId uuid.UUID) ([]*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.KnowledgeRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeResponse, 0, len(notes))
	for _, k := range notes {
		res = append(res, knowledgeResponse(k))
	}
	return res, nil
}

func (s *knowledgeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	knowledge, err := uow.KnowledgeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if knowledge == nil {
		return nil, apperror.NotFound("knowledge note not found")
	}
	return knowledgeResponse(knowledge), nil
}

func (s *knowledgeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeRepository()

	knowledge, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if knowledge == nil {
		return nil, apperror.NotFound("knowledge note not found")
	}

	if req.Title != nil {
		knowledge.Title = *req.Title
	}
	if req.Content != nil {
		knowledge.Content = *req.Content
	}
	if req.Tags != nil {
		knowledge.Tags = req.Tags
	}
	now := time.Now()
	knowledge.UpdatedAt = &now

	if err := repo.Update(ctx, knowledge); err != nil {
		return nil, err
	}
	return knowledgeResponse(knowledge), nil
}

func knowledgeResponse(k *entity.Knowledge) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		Id:        k.Id,
		Title:     k.Title,
		Content:   k.Content,
		Tags:      k.Tags,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}
