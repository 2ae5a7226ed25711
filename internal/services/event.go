package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

type eventService struct {
	repo     domain.EventRepository
	bookings domain.BookingClient
	logger   *zap.Logger
}

// NewEventService creates the event service's EventService. Deleting an event
// cascades to the booking service through bookings.
func NewEventService(repo domain.EventRepository, bookings domain.BookingClient, logger *zap.Logger) domain.EventService {
	return &eventService{repo: repo, bookings: bookings, logger: logger}
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	if err := domain.Validate(event); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, localNotFound(err, domain.EntityEvent, id)
	}
	return event, nil
}

func (s *eventService) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	keyword = strings.TrimSpace(keyword)
	// A blank keyword would match every row.
	if keyword == "" {
		return nil, domain.NotFoundBy(domain.EntityEvent, "name", keyword)
	}
	events, err := s.repo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.NotFoundBy(domain.EntityEvent, "name", keyword)
	}
	return events, nil
}

func (s *eventService) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	events, err := s.repo.ListByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list events by location: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.NotFoundBy(domain.EntityEvent, "location", location)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, event *domain.Event) error {
	if err := domain.Validate(event); err != nil {
		return err
	}
	if err := s.mustExist(ctx, event.ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return localNotFound(err, domain.EntityEvent, event.ID)
	}
	return nil
}

// Delete removes the event, then asks the booking service to drop its bookings.
// The cascade outcome never changes the result.
func (s *eventService) Delete(ctx context.Context, id int) (string, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", localNotFound(err, domain.EntityEvent, id)
	}
	bestEffort(ctx, s.logger, "booking cascade for event", func(ctx context.Context) error {
		return s.bookings.DeleteByEventID(ctx, id)
	}, zap.Int("event_id", id))
	return "Event deleted successfully", nil
}

func (s *eventService) mustExist(ctx context.Context, id int) error {
	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if !ok {
		return domain.NotFound(domain.EntityEvent, id)
	}
	return nil
}
