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

type IJobService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error)
	List(ctx context.Context, userId uuid.UUID, query *dto.ListJobsQuery) ([]*dto.JobResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.JobResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
}

type jobService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewJobService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IJobService {
	return &jobService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *jobService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	status := req.Status
	if status == "" {
		status = constant.JobStatusPending
	}
	if !constant.IsValidJobStatus(status) {
		return nil, apperror.InvalidArgument("invalid status: %s", status)
	}

	appliedDate := req.AppliedDate
	if status == constant.JobStatusApplied && appliedDate == nil {
		now := time.Now()
		appliedDate = &now
	}

	job := entity.Job{
		Id:              uuid.New(),
		UserId:          userId,
		Title:           req.Title,
		Company:         req.Company,
		PostingURL:      req.PostingURL,
		Description:     req.Description,
		Pay:             req.Pay,
		WorkAuth:        req.WorkAuth,
		Location:        req.Location,
		Status:          status,
		ResumeSubmitted: req.ResumeSubmitted,
		AppliedDate:     appliedDate,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.JobRepository().Create(ctx, &job); err != nil {
		return nil, err
	}

	publishActivity(s.publisherService, userId, entity.ActivityJobCreated, map[string]interface{}{
		"job_id":  job.Id,
		"title":   job.Title,
		"company": job.Company,
	})

	return &dto.CreateJobResponse{Id: job.Id}, nil
}

func (s *jobService) List(ctx context.Context, userId uuid.UUID, query *dto.ListJobsQuery) ([]*dto.JobResponse, error) {
	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query != nil && query.Status != "" {
		if !constant.IsValidJobStatus(query.Status) {
			return nil, apperror.InvalidArgument("invalid status: %s", query.Status)
		}
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	if query != nil && query.Search != "" {
		specs = append(specs, specification.TitleOrCompanyLike{Term: query.Search})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		res = append(res, jobResponse(job))
	}
	return res, nil
}

func (s *jobService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.JobRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("job not found")
	}
	return jobResponse(job), nil
}

func (s *jobService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.JobRepository()

	job, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("job not found")
	}

	previousStatus := job.Status

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.PostingURL != nil {
		job.PostingURL = req.PostingURL
	}
	if req.Description != nil {
		job.Description = req.Description
	}
	if req.Pay != nil {
		job.Pay = req.Pay
	}
	if req.WorkAuth != nil {
		job.WorkAuth = req.WorkAuth
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.Status != nil {
		if !constant.IsValidJobStatus(*req.Status) {
			return nil, apperror.InvalidArgument("invalid status: %s", *req.Status)
		}
		job.Status = *req.Status
	}
	if req.ResumeSubmitted != nil {
		job.ResumeSubmitted = *req.ResumeSubmitted
	}
	if req.AppliedDate != nil {
		job.AppliedDate = req.AppliedDate
	}
	if req.Notes != nil {
		job.Notes = req.Notes
	}
	now := time.Now()
	job.UpdatedAt = &now

	// First move into "applied" stamps the application date.
	if job.Status == constant.JobStatusApplied && previousStatus != constant.JobStatusApplied && job.AppliedDate == nil {
		job.AppliedDate = &now
	}

	if err := repo.Update(ctx, job); err != nil {
		return nil, err
	}

	if job.Status != previousStatus {
		publishActivity(s.publisherService, userId, entity.ActivityJobStatusMoved, map[string]interface{}{
			"job_id":          job.Id,
			"previous_status": previousStatus,
			"status":          job.Status,
		})
	}

	return jobResponse(job), nil
}

func jobResponse(job *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		Id:              job.Id,
		Title:           job.Title,
		Company:         job.Company,
		PostingURL:      job.PostingURL,
		Description:     job.Description,
		Pay:             job.Pay,
		WorkAuth:        job.WorkAuth,
		Location:        job.Location,
		Status:          job.Status,
		ResumeSubmitted: job.ResumeSubmitted,
		AppliedDate:     job.AppliedDate,
		Notes:           job.Notes,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}
