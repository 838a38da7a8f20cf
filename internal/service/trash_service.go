package service

import (
	"context"
	"sort"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/contract"
	"careerflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITrashService interface {
	SoftDelete(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error
	ListTrash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashItemResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error
	PermanentDelete(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error
	EmptyTrash(ctx context.Context, userId uuid.UUID) (*dto.EmptyTrashResponse, error)
}

// trashService is the one place the trash lifecycle lives. Every kind goes
// through the same TrashStore contract; the service only resolves kinds and
// translates row counts into errors.
type trashService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewTrashService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ITrashService {
	return &trashService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *trashService) resolveStore(ctx context.Context, kind string) (entity.TrashKind, contract.TrashStore, error) {
	parsed, ok := entity.ParseTrashKind(kind)
	if !ok {
		return "", nil, apperror.InvalidArgument("unknown trash kind: %s", kind)
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	store, ok := uow.TrashStore(parsed)
	if !ok {
		return "", nil, apperror.InvalidArgument("kind %s is not soft-deletable", kind)
	}
	return parsed, store, nil
}

func (s *trashService) SoftDelete(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error {
	parsed, store, err := s.resolveStore(ctx, kind)
	if err != nil {
		return err
	}

	// An already-trashed or missing row affects nothing, which makes a
	// second delete of the same id a NotFound rather than a silent no-op.
	deleted, err := store.SoftDelete(ctx, id, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("%s %s not found", parsed, id)
	}

	publishActivity(s.publisherService, userId, entity.ActivityEntityTrashed, map[string]interface{}{
		"kind": string(parsed),
		"id":   id,
	})
	return nil
}

func (s *trashService) ListTrash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var records []entity.TrashRecord
	for _, kind := range entity.TrashKinds {
		store, ok := uow.TrashStore(kind)
		if !ok {
			continue
		}
		kindRecords, err := store.ListTrashed(ctx, userId)
		if err != nil {
			return nil, err
		}
		records = append(records, kindRecords...)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DeletedAt.After(records[j].DeletedAt)
	})

	res := make([]*dto.TrashItemResponse, 0, len(records))
	for _, r := range records {
		res = append(res, &dto.TrashItemResponse{
			Kind:      string(r.Kind),
			Id:        r.Id,
			Label:     r.Label,
			DeletedAt: r.DeletedAt,
		})
	}
	return res, nil
}

func (s *trashService) Restore(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error {
	parsed, store, err := s.resolveStore(ctx, kind)
	if err != nil {
		return err
	}

	restored, err := store.Restore(ctx, id, userId)
	if err != nil {
		return err
	}
	if !restored {
		return apperror.NotFound("%s %s not found in trash", parsed, id)
	}

	publishActivity(s.publisherService, userId, entity.ActivityEntityRestored, map[string]interface{}{
		"kind": string(parsed),
		"id":   id,
	})
	return nil
}

func (s *trashService) PermanentDelete(ctx context.Context, userId uuid.UUID, kind string, id uuid.UUID) error {
	parsed, store, err := s.resolveStore(ctx, kind)
	if err != nil {
		return err
	}

	// Only trashed rows can be purged; an active row must be trashed first.
	purged, err := store.PermanentDelete(ctx, id, userId)
	if err != nil {
		return err
	}
	if !purged {
		return apperror.NotFound("%s %s not found in trash", parsed, id)
	}

	publishActivity(s.publisherService, userId, entity.ActivityEntityPurged, map[string]interface{}{
		"kind": string(parsed),
		"id":   id,
	})
	return nil
}

func (s *trashService) EmptyTrash(ctx context.Context, userId uuid.UUID) (*dto.EmptyTrashResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Kinds are emptied independently; a failure partway leaves the
	// remaining kinds' trash intact rather than rolling back.
	var total int64
	for _, kind := range entity.TrashKinds {
		store, ok := uow.TrashStore(kind)
		if !ok {
			continue
		}
		n, err := store.EmptyTrash(ctx, userId)
		if err != nil {
			return nil, err
		}
		total += n
	}

	publishActivity(s.publisherService, userId, entity.ActivityTrashEmptied, map[string]interface{}{
		"deleted": total,
	})

	return &dto.EmptyTrashResponse{Deleted: total}, nil
}
