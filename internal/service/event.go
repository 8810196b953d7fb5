package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, createdBy string) (*model.Event, error)
	FindAll(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error)
	Cancel(ctx context.Context, id string) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

func parseEventTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperr.Validation(fmt.Sprintf("fecha inválida: %s", value))
	}
	return t, nil
}

func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest, createdBy string) (*model.Event, error) {
	start, err := parseEventTime(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseEventTime(req.End)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
		CreatedBy:   createdBy,
		Status:      model.EventStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventServiceImpl) FindAll(ctx context.Context) ([]*model.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventServiceImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("evento con ID %s no encontrado", id))
		}
		return nil, err
	}
	return event, nil
}

func (s *eventServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Start != nil {
		start, err := parseEventTime(*req.Start)
		if err != nil {
			return nil, err
		}
		updates["start"] = start
	}
	if req.End != nil {
		end, err := parseEventTime(*req.End)
		if err != nil {
			return nil, err
		}
		updates["end"] = end
	}

	if len(updates) > 0 {
		if err := s.eventRepo.Update(ctx, id, updates); err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound(fmt.Sprintf("evento con ID %s no encontrado", id))
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *eventServiceImpl) Cancel(ctx context.Context, id string) (*model.Event, error) {
	if err := s.eventRepo.Update(ctx, id, map[string]interface{}{
		"status": model.EventStatusCanceled,
	}); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("evento con ID %s no encontrado", id))
		}
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound(fmt.Sprintf("evento con ID %s no encontrado", id))
		}
		return err
	}
	return nil
}
