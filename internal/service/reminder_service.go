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

type IReminderService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReminderRequest) (*dto.CreateReminderResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ReminderResponse, error)
	Upcoming(ctx context.Context, userId uuid.UUID) ([]*dto.ReminderResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	Complete(ctx context.Context, userId uuid.UUID, reminderId uuid.UUID) (*dto.ReminderResponse, error)
}

type reminderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReminderService(uowFactory unitofwork.RepositoryFactory) IReminderService {
	return &reminderService{
		uowFactory: uowFactory,
	}
}

func (s *reminderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReminderRequest) (*dto.CreateReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A reminder may point at one of the user's jobs.
	if req.JobId != nil {
		job, err := uow.JobRepository().FindOne(ctx,
			specification.ByID{ID: *req.JobId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, apperror.NotFound("job not found")
		}
	}

	reminderType := req.ReminderType
	if reminderType == "" {
		reminderType = constant.ReminderTypeCustom
	}

	reminder := entity.Reminder{
		Id:           uuid.New(),
		UserId:       userId,
		JobId:        req.JobId,
		RemindAt:     req.RemindAt,
		Message:      req.Message,
		ReminderType: reminderType,
		CreatedAt:    time.Now(),
	}

	if err := uow.ReminderRepository().Create(ctx, &reminder); err != nil {
		return nil, err
	}
	return &dto.CreateReminderResponse{Id: reminder.Id}, nil
}

func (s *reminderService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "remind_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		res = append(res, reminderResponse(r))
	}
	return res, nil
}

// Upcoming lists reminders that are not completed and due within the
// next seven days.
func (s *reminderService) Upcoming(ctx context.Context, userId uuid.UUID) ([]*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.CompletedIs{Completed: false},
		specification.DueBefore{Cutoff: time.Now().Add(7 * 24 * time.Hour)},
		specification.OrderBy{Field: "remind_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		res = append(res, reminderResponse(r))
	}
	return res, nil
}

func (s *reminderService) Complete(ctx context.Context, userId uuid.UUID, reminderId uuid.UUID) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReminderRepository()

	reminder, err := repo.FindOne(ctx,
		specification.ByID{ID: reminderId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperror.NotFound("reminder not found")
	}

	reminder.Completed = true
	now := time.Now()
	reminder.UpdatedAt = &now

	if err := repo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminderResponse(reminder), nil
}

func (s *reminderService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReminderRepository()

	reminder, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperror.NotFound("reminder not found")
	}

	if req.JobId != nil {
		job, err := uow.JobRepository().FindOne(ctx,
			specification.ByID{ID: *req.JobId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, apperror.NotFound("job not found")
		}
		reminder.JobId = req.JobId
	}
	if req.RemindAt != nil {
		reminder.RemindAt = *req.RemindAt
	}
	if req.Message != nil {
		reminder.Message = *req.Message
	}
	if req.ReminderType != nil {
		reminder.ReminderType = *req.ReminderType
	}
	if req.Completed != nil {
		reminder.Completed = *req.Completed
	}
	now := time.Now()
	reminder.UpdatedAt = &now

	if err := repo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminderResponse(reminder), nil
}

func reminderResponse(r *entity.Reminder) *dto.ReminderResponse {
	return &dto.ReminderResponse{
		Id:           r.Id,
		JobId:        r.JobId,
		RemindAt:     r.RemindAt,
		Message:      r.Message,
		ReminderType: r.ReminderType,
		Completed:    r.Completed,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
