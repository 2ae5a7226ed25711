package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

const usersCacheKey = "users:profiles"

type eventAdminService struct {
	events   domain.EventClient
	bookings domain.BookingClient
	users    domain.UserClient
	cache    domain.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewEventAdminService creates an EventAdminService over the peer clients.
// cache may be nil, in which case ListUsers always calls the user service.
func NewEventAdminService(
	events domain.EventClient,
	bookings domain.BookingClient,
	users domain.UserClient,
	cache domain.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) domain.EventAdminService {
	return &eventAdminService{
		events:   events,
		bookings: bookings,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *eventAdminService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := domain.Validate(event); err != nil {
		return nil, err
	}
	created, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

func (s *eventAdminService) UpdateEvent(ctx context.Context, id int, event *domain.Event) (*domain.Event, error) {
	if err := domain.Validate(event); err != nil {
		return nil, err
	}
	if _, err := s.events.GetEvent(ctx, id); err != nil {
		return nil, remoteNotFound(s.logger, err, domain.NotFound(domain.EntityEvent, id))
	}
	event.ID = id
	updated, err := s.events.UpdateEvent(ctx, id, event)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent checks the event exists remotely and deletes it. The event
// service cascades to bookings itself, so no booking call is made here.
func (s *eventAdminService) DeleteEvent(ctx context.Context, id int) (string, error) {
	if _, err := s.events.GetEvent(ctx, id); err != nil {
		return "", remoteNotFound(s.logger, err, domain.NotFound(domain.EntityEvent, id))
	}
	if err := s.events.DeleteEvent(ctx, id); err != nil {
		return "", fmt.Errorf("delete event: %w", err)
	}
	return "Event deleted successfully", nil
}

func (s *eventAdminService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventAdminService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListUsers reads through the cache when one is configured. Cache failures fall back to the user service.
func (s *eventAdminService) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	if s.cache != nil {
		var cached []*domain.UserProfile
		hit, err := s.cache.Get(ctx, usersCacheKey, &cached)
		if err != nil {
			s.logger.Warn("cache read failed", zap.String("key", usersCacheKey), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	profiles, err := s.users.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, usersCacheKey, profiles, s.cacheTTL); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", usersCacheKey), zap.Error(err))
		}
	}
	return profiles, nil
}
