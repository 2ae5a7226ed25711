package domain

import (
	"context"
	"strings"
)

// Event is an event owned by the event service.
// swagger:model Event
type Event struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Location    string `json:"location"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (e Event) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "event name cannot be empty")
	}
	if strings.TrimSpace(e.Location) == "" {
		errs = append(errs, "location shouldn't be empty")
	}
	if strings.TrimSpace(e.Venue) == "" {
		errs = append(errs, "venue shouldn't be empty")
	}
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, "provide a brief description")
	}
	return errs
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	SearchByName(ctx context.Context, keyword string) ([]*Event, error)
	ListByLocation(ctx context.Context, location string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int) error
}

// EventService is the event service's own CRUD plus the booking cascade on delete.
type EventService interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	SearchByName(ctx context.Context, keyword string) ([]*Event, error)
	ListByLocation(ctx context.Context, location string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int) (string, error)
}

// EventAdminService manages events and bookings remotely on behalf of administrators.
type EventAdminService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id int, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id int) (string, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	ListUsers(ctx context.Context) ([]*UserProfile, error)
}
