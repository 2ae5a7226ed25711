package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

type userService struct {
	repo     domain.UserRepository
	hasher   domain.PasswordHasher
	events   domain.EventClient
	bookings domain.BookingClient
	emails   domain.EmailService
	logger   *zap.Logger
}

// NewUserService creates a UserService over the local users table. Event and
// booking data are reached through the peer clients. emails may be nil.
func NewUserService(
	repo domain.UserRepository,
	hasher domain.PasswordHasher,
	events domain.EventClient,
	bookings domain.BookingClient,
	emails domain.EmailService,
	logger *zap.Logger,
) domain.UserService {
	return &userService{
		repo:     repo,
		hasher:   hasher,
		events:   events,
		bookings: bookings,
		emails:   emails,
		logger:   logger,
	}
}

func (s *userService) Create(ctx context.Context, user *domain.User, password string) error {
	if strings.TrimSpace(user.Role) == "" {
		user.Role = domain.DefaultRole
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]*domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, localNotFound(err, domain.EntityUser, id)
	}
	return user, nil
}

// Update replaces the stored user. An empty role keeps the stored one.
func (s *userService) Update(ctx context.Context, user *domain.User, password string) error {
	existing, err := s.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(user.Role) == "" {
		user.Role = existing.Role
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return localNotFound(err, domain.EntityUser, user.ID)
	}
	return nil
}

// Delete removes the user, then asks the booking service to drop the user's bookings.
// The cascade outcome never changes the result.
func (s *userService) Delete(ctx context.Context, id int) (string, error) {
	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return "", domain.NotFound(domain.EntityUser, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", localNotFound(err, domain.EntityUser, id)
	}
	bestEffort(ctx, s.logger, "booking cascade for user", func(ctx context.Context) error {
		return s.bookings.DeleteByUserID(ctx, id)
	}, zap.Int("user_id", id))
	return "User deleted successfully", nil
}

func (s *userService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *userService) SearchEventsByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	events, err := s.events.SearchByName(ctx, keyword)
	if err != nil || len(events) == 0 {
		return nil, remoteNotFound(s.logger, err, domain.NotFoundBy(domain.EntityEvent, "name", keyword))
	}
	return events, nil
}

func (s *userService) SearchEventsByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	events, err := s.events.ListByLocation(ctx, location)
	if err != nil || len(events) == 0 {
		return nil, remoteNotFound(s.logger, err, domain.NotFoundBy(domain.EntityEvent, "location", location))
	}
	return events, nil
}

// RegisterToEvent books userID onto eventID. The local user lookup runs
// first; a missing user issues no remote call. A failed booking create has no
// local side effect to undo.
func (s *userService) RegisterToEvent(ctx context.Context, userID, eventID int) (string, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return "", remoteNotFound(s.logger, err, domain.NotFound(domain.EntityEvent, eventID))
	}
	booking := domain.NewBooking(user, event)
	if _, err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	if s.emails != nil && user.Email != "" {
		bestEffort(ctx, s.logger, "booking confirmation email", func(ctx context.Context) error {
			return s.emails.SendBookingConfirmation(ctx, &domain.BookingConfirmationEmailData{
				Email:     user.Email,
				UserName:  user.Name,
				EventName: event.Name,
				Date:      event.Date.String(),
				Location:  event.Location,
				Venue:     event.Venue,
			})
		}, zap.Int("user_id", userID), zap.Int("event_id", eventID))
	}
	return domain.RegistrationMessage(user.Name, event.Name), nil
}

func (s *userService) ListBookings(ctx context.Context, userID int) ([]*domain.Booking, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByUserID(ctx, userID)
	if err != nil || len(bookings) == 0 {
		return nil, remoteNotFound(s.logger, err, domain.NotFoundBy(domain.EntityBooking, "userId", strconv.Itoa(userID)))
	}
	return bookings, nil
}

// CancelBooking resolves both sides for the confirmation message, then issues
// exactly one unconditional delete for the pair.
func (s *userService) CancelBooking(ctx context.Context, userID, eventID int) (string, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return "", remoteNotFound(s.logger, err, domain.NotFound(domain.EntityEvent, eventID))
	}
	if err := s.bookings.DeleteByUserAndEvent(ctx, userID, eventID); err != nil {
		return "", fmt.Errorf("cancel booking: %w", err)
	}
	return domain.CancellationMessage(user.Name, event.Name), nil
}
