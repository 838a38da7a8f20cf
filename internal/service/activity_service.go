package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/pkg/events"

	"github.com/google/uuid"
)

type IActivityService interface {
	List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
	}
}

func (s *activityService) List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ActivityResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ActivityResponse, 0, len(events))
	for _, e := range events {
		res = append(res, &dto.ActivityResponse{
			Id:        e.Id,
			Type:      e.Type,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return res, nil
}

// publishActivity fires an activity event on the bus. Activity is auxiliary;
// failures are logged, never propagated to the caller.
func publishActivity(publisher IPublisherService, userId uuid.UUID, eventType string, detail map[string]interface{}) {
	if publisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       detail,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(dto.PublishActivityMessage{
		UserId:     userId,
		Type:       event.EventType(),
		Detail:     event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal activity event %s: %v\n", eventType, err)
		return
	}
	if err := publisher.Publish(context.Background(), payload); err != nil {
		fmt.Printf("[WARN] Failed to publish activity event %s: %v\n", eventType, err)
	}
}
