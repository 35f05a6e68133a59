// internal/service/event/event.go
package event

import (
	"context"
	"fmt"
	"time"

	"secad-service/internal/domain/event"
	xerrors "secad-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Datetimes on the calendar form carry minutes, not just dates.
const datetimeLayout = "2006-01-02T15:04"

type EventService struct {
	repo   event.Repository
	logger *zap.Logger
}

func NewEventService(repo event.Repository, logger *zap.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

// CreateEvent validates the form payload and persists the service order. The
// color is assigned by the store layer from the record id.
func (s *EventService) CreateEvent(ctx context.Context, req *event.CreateEventRequest) (*event.Event, error) {
	start, end, err := parseWindow(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	e := &event.Event{
		Title:       req.Title,
		OrderNumber: req.OrderNumber,
		Start:       start,
		End:         end,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("failed to create event", zap.Error(err))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created",
		zap.String("id", e.ID),
		zap.String("order_number", e.OrderNumber),
	)

	return e, nil
}

// GetEvent retrieves a service order by id.
func (s *EventService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateEvent merges the non-nil fields into the stored record; the color
// stays as assigned at creation.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req *event.UpdateEventRequest) (*event.Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.OrderNumber != nil {
		e.OrderNumber = *req.OrderNumber
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Description != nil {
		e.Description = *req.Description
	}

	startStr := e.Start.Format(datetimeLayout)
	endStr := e.End.Format(datetimeLayout)
	if req.Start != nil {
		startStr = *req.Start
	}
	if req.End != nil {
		endStr = *req.End
	}
	start, end, err := parseWindow(startStr, endStr)
	if err != nil {
		return nil, err
	}
	e.Start, e.End = start, end

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("failed to update event", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return e, nil
}

// DeleteEvent removes the service order permanently.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("event deleted", zap.String("id", id))
	return nil
}

// ListEvents returns every service order ordered by start time.
func (s *EventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	return s.repo.List(ctx)
}

func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(datetimeLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start datetime", xerrors.ErrInvalidInput)
	}
	end, err := time.Parse(datetimeLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end datetime", xerrors.ErrInvalidInput)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end precedes start", xerrors.ErrInvalidInput)
	}
	return start.UTC(), end.UTC(), nil
}
