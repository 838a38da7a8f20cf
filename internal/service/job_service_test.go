package service

import (
	"context"
	"testing"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestJobCreateAndShow(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	jobService := NewJobService(factory, nopPublisher{})
	userId := uuid.New()

	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: strPtr("Remote"),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.Id)

	job, err := jobService.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	require.NotNil(t, job.Location)
	assert.Equal(t, "Remote", *job.Location)
	// Status defaults when the request omits it.
	assert.Equal(t, constant.JobStatusPending, job.Status)
}

func TestJobList(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	jobService := NewJobService(factory, nopPublisher{})
	userId := uuid.New()

	seed := []dto.CreateJobRequest{
		{Title: "Backend Engineer", Company: "Acme", Status: constant.JobStatusApplied},
		{Title: "Frontend Engineer", Company: "Globex", Status: constant.JobStatusApplied},
		{Title: "Data Scientist", Company: "Initech", Status: constant.JobStatusInterview},
	}
	for i := range seed {
		_, err := jobService.Create(ctx, userId, &seed[i])
		require.NoError(t, err)
	}

	t.Run("lists everything by default", func(t *testing.T) {
		jobs, err := jobService.List(ctx, userId, &dto.ListJobsQuery{})
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		jobs, err := jobService.List(ctx, userId, &dto.ListJobsQuery{Status: constant.JobStatusApplied})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("rejects unknown status filters", func(t *testing.T) {
		_, err := jobService.List(ctx, userId, &dto.ListJobsQuery{Status: "archived"})
		assert.True(t, apperror.IsInvalidArgument(err))
	})

	t.Run("searches title and company", func(t *testing.T) {
		jobs, err := jobService.List(ctx, userId, &dto.ListJobsQuery{Search: "Engineer"})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)

		jobs, err = jobService.List(ctx, userId, &dto.ListJobsQuery{Search: "Initech"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Data Scientist", jobs[0].Title)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		jobs, err := jobService.List(ctx, uuid.New(), &dto.ListJobsQuery{})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobUpdate(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	jobService := NewJobService(factory, nopPublisher{})
	userId := uuid.New()

	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:   "SRE",
		Company: "Globex",
	})
	require.NoError(t, err)

	t.Run("partial update only touches given fields", func(t *testing.T) {
		status := constant.JobStatusInterview
		updated, err := jobService.Update(ctx, userId, &dto.UpdateJobRequest{
			Id:     created.Id,
			Status: &status,
			Notes:  strPtr("phone screen on friday"),
		})
		require.NoError(t, err)
		assert.Equal(t, constant.JobStatusInterview, updated.Status)
		assert.Equal(t, "SRE", updated.Title)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "phone screen on friday", *updated.Notes)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := jobService.Update(ctx, userId, &dto.UpdateJobRequest{Id: uuid.New()})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("other users cannot update", func(t *testing.T) {
		status := constant.JobStatusRejected
		_, err := jobService.Update(ctx, uuid.New(), &dto.UpdateJobRequest{
			Id:     created.Id,
			Status: &status,
		})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := jobService.Update(ctx, userId, &dto.UpdateJobRequest{
			Id:     created.Id,
			Status: strPtr("archived"),
		})
		assert.True(t, apperror.IsInvalidArgument(err))
	})
}

func TestJobAppliedDateStamping(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	jobService := NewJobService(factory, nopPublisher{})
	userId := uuid.New()

	t.Run("create with applied status", func(t *testing.T) {
		created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
			Title: "Data Engineer", Company: "Hooli", Status: constant.JobStatusApplied,
		})
		require.NoError(t, err)

		job, err := jobService.Show(ctx, userId, created.Id)
		require.NoError(t, err)
		require.NotNil(t, job.AppliedDate)
	})

	t.Run("move into applied", func(t *testing.T) {
		created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
			Title: "Platform Engineer", Company: "Initech",
		})
		require.NoError(t, err)

		job, err := jobService.Show(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Nil(t, job.AppliedDate)

		status := constant.JobStatusApplied
		updated, err := jobService.Update(ctx, userId, &dto.UpdateJobRequest{
			Id:     created.Id,
			Status: &status,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.AppliedDate)
		first := *updated.AppliedDate

		// Later transitions keep the original date.
		status = constant.JobStatusOffer
		_, err = jobService.Update(ctx, userId, &dto.UpdateJobRequest{Id: created.Id, Status: &status})
		require.NoError(t, err)
		status = constant.JobStatusApplied
		updated, err = jobService.Update(ctx, userId, &dto.UpdateJobRequest{Id: created.Id, Status: &status})
		require.NoError(t, err)
		require.NotNil(t, updated.AppliedDate)
		assert.Equal(t, first.Unix(), updated.AppliedDate.Unix())
	})
}
