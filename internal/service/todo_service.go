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

type ITodoService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.CreateTodoResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TodoResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error)
}

type todoService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTodoService(uowFactory unitofwork.RepositoryFactory) ITodoService {
	return &todoService{
		uowFactory: uowFactory,
	}
}

func (s *todoService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.CreateTodoResponse, error) {
	category := req.Category
	if category == "" {
		category = "general"
	}

	todo := entity.Todo{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Category:  category,
		DueDate:   req.DueDate,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TodoRepository().Create(ctx, &todo); err != nil {
		return nil, err
	}
	return &dto.CreateTodoResponse{Id: todo.Id}, nil
}

func (s *todoService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	todos, err := uow.TodoRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TodoResponse, 0, len(todos))
	for _, t := range todos {
		res = append(res, todoResponse(t))
	}
	return res, nil
}

func (s *todoService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TodoRepository()

	todo, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperror.NotFound("todo not found")
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	if req.Category != nil {
		todo.Category = *req.Category
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	now := time.Now()
	todo.UpdatedAt = &now

	if err := repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todoResponse(todo), nil
}

func todoResponse(t *entity.Todo) *dto.TodoResponse {
	return &dto.TodoResponse{
		Id:        t.Id,
		Title:     t.Title,
		Completed: t.Completed,
		Category:  t.Category,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
