package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "USER"

// AdminRole grants access to event administration.
const AdminRole = "ADMIN"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordTooLongMessage is the violation reported for a password over MaxPasswordBytes.
const PasswordTooLongMessage = "password must be at most 72 bytes"

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\d{10}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(s))
}

// ValidPhone reports whether s is a 10-digit phone number.
func ValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// User is a registered user. The password is only ever held as a hash.
// swagger:model User
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
}

// Profile returns the reduced projection shown to administrators.
func (u *User) Profile() *UserProfile {
	return &UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// UserProfile is the reduced-field projection of a User.
// swagger:model UserProfile
type UserProfile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// AuthResult is returned by a successful authentication.
// swagger:model AuthResult
type AuthResult struct {
	UserID int    `json:"id"`
	Token  string `json:"token"`
	Role   string `json:"role"`
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed tokens carrying the user id and role.
type TokenIssuer interface {
	Issue(userID int, name, role string, expiry time.Duration) (string, error)
}

// Principal is the identity carried by a verified token.
type Principal struct {
	UserID int
	Name   string
	Role   string
}

// TokenVerifier verifies a token and returns the authenticated principal.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error
}

// UserService covers user profile CRUD and the user-facing event workflows.
// Write operations take the plain password and store its hash.
type UserService interface {
	Create(ctx context.Context, user *User, password string) error
	List(ctx context.Context) ([]*User, error)
	ListProfiles(ctx context.Context) ([]*UserProfile, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Update(ctx context.Context, user *User, password string) error
	Delete(ctx context.Context, id int) (string, error)

	ListEvents(ctx context.Context) ([]*Event, error)
	SearchEventsByName(ctx context.Context, keyword string) ([]*Event, error)
	SearchEventsByLocation(ctx context.Context, location string) ([]*Event, error)

	RegisterToEvent(ctx context.Context, userID, eventID int) (string, error)
	ListBookings(ctx context.Context, userID int) ([]*Booking, error)
	CancelBooking(ctx context.Context, userID, eventID int) (string, error)
}

// AuthService handles signup and credential authentication.
type AuthService interface {
	SignUp(ctx context.Context, user *User, password string) (*User, error)
	Authenticate(ctx context.Context, name, password string) (*AuthResult, error)
}
