package service

import (
	"context"
	"testing"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderUpcoming(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	reminderService := NewReminderService(factory)
	userId := uuid.New()

	soon, err := reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt:     time.Now().Add(24 * time.Hour),
		Message:      "call the recruiter",
		ReminderType: constant.ReminderTypeFollowUp,
	})
	require.NoError(t, err)
	_, err = reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt: time.Now().Add(30 * 24 * time.Hour),
		Message:  "check back next month",
	})
	require.NoError(t, err)
	done, err := reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt: time.Now().Add(2 * time.Hour),
		Message:  "already handled",
	})
	require.NoError(t, err)
	completed := true
	_, err = reminderService.Update(ctx, userId, &dto.UpdateReminderRequest{Id: done.Id, Completed: &completed})
	require.NoError(t, err)

	upcoming, err := reminderService.Upcoming(ctx, userId)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, soon.Id, upcoming[0].Id)
	assert.Equal(t, "call the recruiter", upcoming[0].Message)

	t.Run("other users see nothing", func(t *testing.T) {
		upcoming, err := reminderService.Upcoming(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, upcoming)
	})
}

func TestReminderComplete(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	reminderService := NewReminderService(factory)
	userId := uuid.New()

	created, err := reminderService.Create(ctx, userId, &dto.CreateReminderRequest{
		RemindAt: time.Now().Add(time.Hour),
		Message:  "send thank-you note",
	})
	require.NoError(t, err)

	res, err := reminderService.Complete(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.True(t, res.Completed)

	upcoming, err := reminderService.Upcoming(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	t.Run("unknown reminder", func(t *testing.T) {
		_, err := reminderService.Complete(ctx, userId, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("cross user", func(t *testing.T) {
		_, err := reminderService.Complete(ctx, uuid.New(), created.Id)
		assert.True(t, apperror.IsNotFound(err))
	})
}
