package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

type bookingService struct {
	repo   domain.BookingRepository
	users  domain.UserClient
	events domain.EventClient
	logger *zap.Logger
}

// NewBookingService creates the booking service's BookingService. users and
// events are only used by Register.
func NewBookingService(repo domain.BookingRepository, users domain.UserClient, events domain.EventClient, logger *zap.Logger) domain.BookingService {
	return &bookingService{repo: repo, users: users, events: events, logger: logger}
}

func (s *bookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, localNotFound(err, domain.EntityBooking, id)
	}
	return booking, nil
}

func (s *bookingService) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	bookings, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for user: %w", err)
	}
	if len(bookings) == 0 {
		return nil, domain.NotFoundBy(domain.EntityBooking, "userId", strconv.Itoa(userID))
	}
	return bookings, nil
}

func (s *bookingService) Create(ctx context.Context, booking *domain.Booking) error {
	if err := domain.Validate(booking); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// Register looks the user up before the event; a failed user lookup issues no event call.
func (s *bookingService) Register(ctx context.Context, userID, eventID int) (string, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return "", remoteNotFound(s.logger, err, domain.NotFound(domain.EntityUser, userID))
	}
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return "", remoteNotFound(s.logger, err, domain.NotFound(domain.EntityEvent, eventID))
	}
	booking := domain.NewBooking(user, event)
	if err := s.repo.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return domain.RegistrationMessage(user.Name, event.Name), nil
}

func (s *bookingService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if !ok {
		return domain.NotFound(domain.EntityBooking, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return localNotFound(err, domain.EntityBooking, id)
	}
	return nil
}

// DeleteByEventID is the cascade target for event deletion. Matching nothing is not an error.
func (s *bookingService) DeleteByEventID(ctx context.Context, eventID int) error {
	n, err := s.repo.DeleteByEventID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("delete bookings for event: %w", err)
	}
	s.logger.Debug("bookings deleted for event", zap.Int("event_id", eventID), zap.Int64("count", n))
	return nil
}

// DeleteByUserID is the cascade target for user deletion. Matching nothing is not an error.
func (s *bookingService) DeleteByUserID(ctx context.Context, userID int) error {
	n, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete bookings for user: %w", err)
	}
	s.logger.Debug("bookings deleted for user", zap.Int("user_id", userID), zap.Int64("count", n))
	return nil
}

// DeleteByUserAndEvent is the cancellation target. It does not check that a booking exists.
func (s *bookingService) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (string, error) {
	n, err := s.repo.DeleteByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return "", fmt.Errorf("delete booking: %w", err)
	}
	s.logger.Debug("bookings cancelled", zap.Int("user_id", userID), zap.Int("event_id", eventID), zap.Int64("count", n))
	return "Booking deleted successfully", nil
}
