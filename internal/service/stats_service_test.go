package service

import (
	"context"
	"testing"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	todoService := NewTodoService(factory)
	reminderService := NewReminderService(factory)
	trashService := NewTrashService(factory, nopPublisher{})
	statsService := NewStatsService(factory)
	userId := uuid.New()

	_, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title: "A", Company: "X", Status: constant.JobStatusApplied, ResumeSubmitted: true,
	})
	require.NoError(t, err)
	_, err = jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title: "B", Company: "Y", Status: constant.JobStatusApplied,
	})
	require.NoError(t, err)
	_, err = jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title: "C", Company: "Z", Status: constant.JobStatusInterview,
	})
	require.NoError(t, err)
	trashedJob, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title: "D", Company: "W",
	})
	require.NoError(t, err)
	require.NoError(t, trashService.SoftDelete(ctx, userId, "job", trashedJob.Id))

	_, err = todoService.Create(ctx, userId, &dto.CreateTodoRequest{Title: "Prep interview"})
	require.NoError(t, err)
	done, err := todoService.Create(ctx, userId, &dto.CreateTodoRequest{Title: "Send resume"})
	require.NoError(t, err)
	completed := true
	_, err = todoService.Update(ctx, userId, &dto.UpdateTodoRequest{Id: done.Id, Completed: &completed})
	require.NoError(t, err)

	_, err = reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt: time.Now().Add(48 * time.Hour),
		Message:  "follow up with recruiter",
	})
	require.NoError(t, err)
	_, err = reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt: time.Now().Add(30 * 24 * time.Hour),
		Message:  "check back next month",
	})
	require.NoError(t, err)

	stats, err := statsService.Dashboard(ctx, userId)
	require.NoError(t, err)

	// Trashed jobs drop out of the active counts.
	assert.Equal(t, int64(3), stats.TotalJobs)
	assert.Equal(t, int64(2), stats.ByStatus[constant.JobStatusApplied])
	assert.Equal(t, int64(1), stats.ByStatus[constant.JobStatusInterview])
	assert.Equal(t, int64(0), stats.ByStatus[constant.JobStatusOffer])
	assert.Equal(t, int64(1), stats.ResumesSubmitted)
	assert.Equal(t, int64(1), stats.TrashedJobs)
	assert.Equal(t, int64(1), stats.PendingTodos)
	assert.Equal(t, int64(1), stats.UpcomingReminders)
}

func TestDashboardStatsCached(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	statsService := NewStatsService(factory)
	userId := uuid.New()

	stats, err := statsService.Dashboard(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalJobs)

	_, err = jobService.Create(ctx, userId, &dto.CreateJobRequest{Title: "A", Company: "X"})
	require.NoError(t, err)

	// Within the cache window the stale snapshot is served.
	stats, err = statsService.Dashboard(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalJobs)

	// But another user gets a fresh one.
	other, err := statsService.Dashboard(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.TotalJobs)
}
