package service

import (
	"context"
	"testing"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrashLifecycle(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	trashService := NewTrashService(factory, nopPublisher{})
	userId := uuid.New()

	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:   "Backend Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	t.Run("soft delete hides the job from listings", func(t *testing.T) {
		err := trashService.SoftDelete(ctx, userId, "job", created.Id)
		require.NoError(t, err)

		jobs, err := jobService.List(ctx, userId, &dto.ListJobsQuery{})
		require.NoError(t, err)
		assert.Empty(t, jobs)

		_, err = jobService.Show(ctx, userId, created.Id)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("trashed job shows up in the trash listing", func(t *testing.T) {
		items, err := trashService.ListTrash(ctx, userId)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "job", items[0].Kind)
		assert.Equal(t, created.Id, items[0].Id)
		assert.Equal(t, "Backend Engineer at Acme", items[0].Label)
		assert.False(t, items[0].DeletedAt.IsZero())
	})

	t.Run("restore brings the job back intact", func(t *testing.T) {
		err := trashService.Restore(ctx, userId, "job", created.Id)
		require.NoError(t, err)

		job, err := jobService.Show(ctx, userId, created.Id)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", job.Title)

		items, err := trashService.ListTrash(ctx, userId)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestTrashDoubleDelete(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	trashService := NewTrashService(factory, nopPublisher{})
	userId := uuid.New()

	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:   "SRE",
		Company: "Globex",
	})
	require.NoError(t, err)

	require.NoError(t, trashService.SoftDelete(ctx, userId, "job", created.Id))

	err = trashService.SoftDelete(ctx, userId, "job", created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestTrashPermanentDelete(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	trashService := NewTrashService(factory, nopPublisher{})
	userId := uuid.New()

	created, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{
		Title:   "Data Engineer",
		Company: "Initech",
	})
	require.NoError(t, err)

	t.Run("active rows cannot be purged directly", func(t *testing.T) {
		err := trashService.PermanentDelete(ctx, userId, "job", created.Id)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("trashed rows can be purged and never restored", func(t *testing.T) {
		require.NoError(t, trashService.SoftDelete(ctx, userId, "job", created.Id))
		require.NoError(t, trashService.PermanentDelete(ctx, userId, "job", created.Id))

		err := trashService.Restore(ctx, userId, "job", created.Id)
		assert.True(t, apperror.IsNotFound(err))

		items, err := trashService.ListTrash(ctx, userId)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestEmptyTrash(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	todoService := NewTodoService(factory)
	trashService := NewTrashService(factory, nopPublisher{})
	userId := uuid.New()

	jobA, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{Title: "A", Company: "X"})
	require.NoError(t, err)
	jobB, err := jobService.Create(ctx, userId, &dto.CreateJobRequest{Title: "B", Company: "Y"})
	require.NoError(t, err)
	todo, err := todoService.Create(ctx, userId, &dto.CreateTodoRequest{Title: "Follow up"})
	require.NoError(t, err)

	require.NoError(t, trashService.SoftDelete(ctx, userId, "job", jobA.Id))
	require.NoError(t, trashService.SoftDelete(ctx, userId, "job", jobB.Id))
	require.NoError(t, trashService.SoftDelete(ctx, userId, "todo", todo.Id))

	res, err := trashService.EmptyTrash(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Deleted)

	items, err := trashService.ListTrash(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = trashService.Restore(ctx, userId, "job", jobA.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestTrashUnknownKind(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	trashService := NewTrashService(factory, nopPublisher{})

	err := trashService.SoftDelete(ctx, uuid.New(), "notebook", uuid.New())
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestTrashCrossUserIsolation(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)

	jobService := NewJobService(factory, nopPublisher{})
	trashService := NewTrashService(factory, nopPublisher{})
	owner := uuid.New()
	intruder := uuid.New()

	created, err := jobService.Create(ctx, owner, &dto.CreateJobRequest{
		Title:   "Platform Engineer",
		Company: "Hooli",
	})
	require.NoError(t, err)

	t.Run("other users cannot trash the row", func(t *testing.T) {
		err := trashService.SoftDelete(ctx, intruder, "job", created.Id)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("other users cannot see or touch the trashed row", func(t *testing.T) {
		require.NoError(t, trashService.SoftDelete(ctx, owner, "job", created.Id))

		items, err := trashService.ListTrash(ctx, intruder)
		require.NoError(t, err)
		assert.Empty(t, items)

		err = trashService.Restore(ctx, intruder, "job", created.Id)
		assert.True(t, apperror.IsNotFound(err))

		err = trashService.PermanentDelete(ctx, intruder, "job", created.Id)
		assert.True(t, apperror.IsNotFound(err))

		res, err := trashService.EmptyTrash(ctx, intruder)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Deleted)

		// Still restorable by the owner.
		require.NoError(t, trashService.Restore(ctx, owner, "job", created.Id))
	})
}
