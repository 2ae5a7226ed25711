package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// doRequest calls handler with an optional JSON body and path values and
// decodes the response envelope.
func doRequest(t *testing.T, handler http.HandlerFunc, method, body string, pathValues map[string]string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)

	var envelope helpers.APIResponse
	if rr.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	}
	return rr, envelope
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err          error
	event        *domain.Event
	events       []*domain.Event
	lastKeyword  string
	lastUpdateID int
	created      *domain.Event
}

func (f *fakeEventService) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = 1
	f.created = e
	return nil
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	f.lastKeyword = keyword
	return f.events, f.err
}

func (f *fakeEventService) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	f.lastKeyword = location
	return f.events, f.err
}

func (f *fakeEventService) Update(ctx context.Context, e *domain.Event) error {
	f.lastUpdateID = e.ID
	return f.err
}

func (f *fakeEventService) Delete(ctx context.Context, id int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Event deleted successfully", nil
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	err      error
	created  *domain.Booking
	register [2]int
	deleted  []string
}

func (f *fakeBookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return []*domain.Booking{}, f.err
}

func (f *fakeBookingService) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: id}, nil
}

func (f *fakeBookingService) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Booking{{ID: 1, UserID: userID}}, nil
}

func (f *fakeBookingService) Create(ctx context.Context, b *domain.Booking) error {
	if f.err != nil {
		return f.err
	}
	b.ID = 10
	f.created = b
	return nil
}

func (f *fakeBookingService) Register(ctx context.Context, userID, eventID int) (string, error) {
	f.register = [2]int{userID, eventID}
	if f.err != nil {
		return "", f.err
	}
	return domain.RegistrationMessage("Alice", "Conf"), nil
}

func (f *fakeBookingService) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, "id")
	return f.err
}

func (f *fakeBookingService) DeleteByEventID(ctx context.Context, eventID int) error {
	f.deleted = append(f.deleted, "event")
	return f.err
}

func (f *fakeBookingService) DeleteByUserID(ctx context.Context, userID int) error {
	f.deleted = append(f.deleted, "user")
	return f.err
}

func (f *fakeBookingService) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (string, error) {
	f.deleted = append(f.deleted, "user+event")
	return "Booking deleted successfully", f.err
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	err          error
	lastUser     *domain.User
	lastPassword string
}

func (f *fakeUserService) Create(ctx context.Context, u *domain.User, password string) error {
	f.lastUser, f.lastPassword = u, password
	if f.err != nil {
		return f.err
	}
	u.ID = 1
	if u.Role == "" {
		u.Role = domain.DefaultRole
	}
	return nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: 1, Name: "alice", PasswordHash: "secret-hash"}}, f.err
}

func (f *fakeUserService) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	return []*domain.UserProfile{{ID: 1, Name: "alice"}}, f.err
}

func (f *fakeUserService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id, Name: "alice", PasswordHash: "secret-hash"}, nil
}

func (f *fakeUserService) Update(ctx context.Context, u *domain.User, password string) error {
	f.lastUser, f.lastPassword = u, password
	return f.err
}

func (f *fakeUserService) Delete(ctx context.Context, id int) (string, error) {
	return "User deleted successfully", f.err
}

func (f *fakeUserService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return []*domain.Event{}, f.err
}

func (f *fakeUserService) SearchEventsByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	return nil, f.err
}

func (f *fakeUserService) SearchEventsByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	return nil, f.err
}

func (f *fakeUserService) RegisterToEvent(ctx context.Context, userID, eventID int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return domain.RegistrationMessage("alice", "Conf"), nil
}

func (f *fakeUserService) ListBookings(ctx context.Context, userID int) ([]*domain.Booking, error) {
	return nil, f.err
}

func (f *fakeUserService) CancelBooking(ctx context.Context, userID, eventID int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return domain.CancellationMessage("alice", "Conf"), nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	err error
}

func (f *fakeAuthService) SignUp(ctx context.Context, u *domain.User, password string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u.ID = 1
	return u, nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, name, password string) (*domain.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AuthResult{UserID: 1, Token: "jwt", Role: "USER"}, nil
}

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	err error
}

func (f *fakeAdminService) Create(ctx context.Context, a *domain.Admin, password string) error {
	a.ID = 1
	a.PasswordHash = "hash-" + password
	return f.err
}

func (f *fakeAdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	return []*domain.Admin{}, f.err
}

func (f *fakeAdminService) GetByID(ctx context.Context, id int) (*domain.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Admin{ID: id, Name: "root"}, nil
}

func (f *fakeAdminService) Update(ctx context.Context, a *domain.Admin, password string) error {
	return f.err
}

func (f *fakeAdminService) Delete(ctx context.Context, id int) (string, error) {
	return "Admin deleted successfully", f.err
}

// fakeEventAdminService implements domain.EventAdminService for handler tests.
type fakeEventAdminService struct {
	err       error
	lastID    int
	lastEvent *domain.Event
	profiles  []*domain.UserProfile
}

func (f *fakeEventAdminService) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	f.lastEvent = e
	if f.err != nil {
		return nil, f.err
	}
	cp := *e
	cp.ID = 5
	return &cp, nil
}

func (f *fakeEventAdminService) UpdateEvent(ctx context.Context, id int, e *domain.Event) (*domain.Event, error) {
	f.lastID, f.lastEvent = id, e
	if f.err != nil {
		return nil, f.err
	}
	return e, nil
}

func (f *fakeEventAdminService) DeleteEvent(ctx context.Context, id int) (string, error) {
	f.lastID = id
	if f.err != nil {
		return "", f.err
	}
	return "Event deleted successfully", nil
}

func (f *fakeEventAdminService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return []*domain.Event{}, f.err
}

func (f *fakeEventAdminService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return []*domain.Booking{}, f.err
}

func (f *fakeEventAdminService) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	return f.profiles, f.err
}
