package service

import (
	"context"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IStatsService interface {
	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
		cache:      cache.New(30*time.Second, 1*time.Minute),
	}
}

func (s *statsService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error) {
	cacheKey := "dashboard:" + userId.String()
	if x, found := s.cache.Get(cacheKey); found {
		return x.(*dto.DashboardStatsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedBy{UserID: userId}

	jobs := uow.JobRepository()
	total, err := jobs.Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(constant.JobStatuses))
	for _, status := range constant.JobStatuses {
		n, err := jobs.Count(ctx, owned, specification.ByStatus{Status: status})
		if err != nil {
			return nil, err
		}
		byStatus[status] = n
	}

	resumes, err := jobs.Count(ctx, owned, specification.Filter("resume_submitted", true))
	if err != nil {
		return nil, err
	}

	trashed, err := jobs.ListTrashed(ctx, userId)
	if err != nil {
		return nil, err
	}

	pendingTodos, err := uow.TodoRepository().Count(ctx, owned, specification.CompletedIs{Completed: false})
	if err != nil {
		return nil, err
	}

	upcoming, err := uow.ReminderRepository().Count(ctx, owned,
		specification.CompletedIs{Completed: false},
		specification.DueBefore{Cutoff: time.Now().Add(7 * 24 * time.Hour)},
	)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		TotalJobs:         total,
		ByStatus:          byStatus,
		ResumesSubmitted:  resumes,
		TrashedJobs:       int64(len(trashed)),
		PendingTodos:      pendingTodos,
		UpcomingReminders: upcoming,
	}
	s.cache.Set(cacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
