package domain

import (
	"context"
	"time"
)

// Logical names of the peer services.
const (
	EventServiceName    = "EVENT-SERVICE"
	BookingServiceName  = "BOOKING-SERVICE"
	UserServiceName     = "USER-SERVICE"
	SecurityServiceName = "SECURITY-SERVICE"
)

// EventClient is the remote surface of the event service.
type EventClient interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int) (*Event, error)
	SearchByName(ctx context.Context, keyword string) ([]*Event, error)
	ListByLocation(ctx context.Context, location string) ([]*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id int, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

// BookingClient is the remote surface of the booking service.
// GetBooking and DeleteBooking complete the peer's public API; no service here calls them.
type BookingClient interface {
	ListBookings(ctx context.Context) ([]*Booking, error)
	GetBooking(ctx context.Context, id int) (*Booking, error)
	ListByUserID(ctx context.Context, userID int) ([]*Booking, error)
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	DeleteBooking(ctx context.Context, id int) error
	DeleteByEventID(ctx context.Context, eventID int) error
	DeleteByUserID(ctx context.Context, userID int) error
	DeleteByUserAndEvent(ctx context.Context, userID, eventID int) error
}

// UserCredentials is the request body for creating or replacing a user remotely.
type UserCredentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UserClient is the remote surface of the user and security services.
// The services here only read users; CreateUser, UpdateUser, DeleteUser and
// Authenticate complete the peer's public API for other callers.
type UserClient interface {
	ListUsers(ctx context.Context) ([]*User, error)
	ListProfiles(ctx context.Context) ([]*UserProfile, error)
	GetUser(ctx context.Context, id int) (*User, error)
	CreateUser(ctx context.Context, creds UserCredentials) error
	UpdateUser(ctx context.Context, id int, creds UserCredentials) (*User, error)
	DeleteUser(ctx context.Context, id int) error
	Authenticate(ctx context.Context, name, password string) (*AuthResult, error)
}

// Cache stores JSON-encodable values with a TTL.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
