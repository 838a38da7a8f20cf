package service

import (
	"context"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILLMConfigService interface {
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveLLMConfigRequest) (*dto.LLMConfigResponse, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.LLMConfigResponse, error)
}

type llmConfigService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLLMConfigService(uowFactory unitofwork.RepositoryFactory) ILLMConfigService {
	return &llmConfigService{
		uowFactory: uowFactory,
	}
}

// Save replaces any existing config wholesale; there is at most one per user.
func (s *llmConfigService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveLLMConfigRequest) (*dto.LLMConfigResponse, error) {
	switch req.Provider {
	case constant.LLMProviderOpenAI, constant.LLMProviderOpenRouter:
		if req.APIKey == nil || *req.APIKey == "" {
			return nil, apperror.InvalidArgument("provider %s requires an api key", req.Provider)
		}
	case constant.LLMProviderOpenAICompatible:
		if req.BaseURL == nil || *req.BaseURL == "" {
			return nil, apperror.InvalidArgument("provider %s requires a base url", req.Provider)
		}
	case constant.LLMProviderOllama:
		// Base URL optional, defaults to the local daemon.
	default:
		return nil, apperror.InvalidArgument("unsupported provider: %s", req.Provider)
	}

	config := entity.LLMConfig{
		Id:        uuid.New(),
		UserId:    userId,
		Provider:  req.Provider,
		Model:     req.Model,
		APIKey:    req.APIKey,
		BaseURL:   req.BaseURL,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.LLMConfigRepository()
	if err := repo.DeleteByUserId(ctx, userId); err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, &config); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return llmConfigResponse(&config), nil
}

func (s *llmConfigService) Get(ctx context.Context, userId uuid.UUID) (*dto.LLMConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := uow.LLMConfigRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, apperror.NotFound("no LLM configuration saved")
	}
	return llmConfigResponse(config), nil
}

func llmConfigResponse(c *entity.LLMConfig) *dto.LLMConfigResponse {
	return &dto.LLMConfigResponse{
		Id:        c.Id,
		Provider:  c.Provider,
		Model:     c.Model,
		HasAPIKey: c.APIKey != nil && *c.APIKey != "",
		BaseURL:   c.BaseURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
