package domain

import (
	"context"
	"fmt"
	"strings"
)

// Booking is a denormalized snapshot of a user's registration for an event.
// The user and event attributes are copied at creation and never refreshed.
// swagger:model Booking
type Booking struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName"`
	EventID   int    `json:"eventId"`
	EventName string `json:"eventName"`
	Date      Date   `json:"date" swaggertype:"string" example:"15-11-2025"`
	Location  string `json:"location"`
	Venue     string `json:"venue"`
}

// NewBooking builds the snapshot for user registering to event. ID is set by the store.
func NewBooking(user *User, event *Event) *Booking {
	return &Booking{
		UserID:    user.ID,
		UserName:  user.Name,
		EventID:   event.ID,
		EventName: event.Name,
		Date:      event.Date,
		Location:  event.Location,
		Venue:     event.Venue,
	}
}

// Validate implements Validator.
func (b Booking) Validate() []string {
	var errs []string
	if b.UserID <= 0 {
		errs = append(errs, "userId is required")
	}
	if strings.TrimSpace(b.UserName) == "" {
		errs = append(errs, "userName is required")
	}
	if b.EventID <= 0 {
		errs = append(errs, "eventId is required")
	}
	if strings.TrimSpace(b.EventName) == "" {
		errs = append(errs, "eventName is required")
	}
	return errs
}

// RegistrationMessage is the confirmation returned by a successful registration.
func RegistrationMessage(userName, eventName string) string {
	return fmt.Sprintf("User %s registered to event %s successfully", userName, eventName)
}

// CancellationMessage is the confirmation returned by a successful cancellation.
func CancellationMessage(userName, eventName string) string {
	return fmt.Sprintf("User %s successfully cancelled booking for event %s", userName, eventName)
}

// BookingRepository defines the interface for booking storage.
// The bulk deletes report how many rows they removed.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	List(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ListByUserID(ctx context.Context, userID int) ([]*Booking, error)
	Delete(ctx context.Context, id int) error
	DeleteByEventID(ctx context.Context, eventID int) (int64, error)
	DeleteByUserID(ctx context.Context, userID int) (int64, error)
	DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (int64, error)
}

// BookingService defines the booking service's operations.
type BookingService interface {
	List(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	ListByUserID(ctx context.Context, userID int) ([]*Booking, error)
	// Create persists a snapshot composed by a registration workflow in another service.
	Create(ctx context.Context, booking *Booking) error
	// Register fetches the user and the event from their owning services and persists the snapshot.
	Register(ctx context.Context, userID, eventID int) (string, error)
	Delete(ctx context.Context, id int) error
	DeleteByEventID(ctx context.Context, eventID int) error
	DeleteByUserID(ctx context.Context, userID int) error
	DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (string, error)
}
