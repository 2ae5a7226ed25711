package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"eventbooking/internal/domain"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[int]*domain.Event
	nextID    int
	updates   int
	deletes   []int
	listErr   error
	existsErr error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[int]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeEventRepo) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(keyword)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.Location == location {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	f.updates++
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeBookingRepo implements domain.BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int
	createErr error
	deletes   []string
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	_, err := f.GetByID(ctx, id)
	return err == nil, nil
}

func (f *fakeBookingRepo) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int) error {
	f.deletes = append(f.deletes, fmt.Sprintf("id=%d", id))
	n := f.remove(func(b *domain.Booking) bool { return b.ID == id })
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeBookingRepo) DeleteByEventID(ctx context.Context, eventID int) (int64, error) {
	f.deletes = append(f.deletes, fmt.Sprintf("event=%d", eventID))
	return f.remove(func(b *domain.Booking) bool { return b.EventID == eventID }), nil
}

func (f *fakeBookingRepo) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	f.deletes = append(f.deletes, fmt.Sprintf("user=%d", userID))
	return f.remove(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookingRepo) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (int64, error) {
	f.deletes = append(f.deletes, fmt.Sprintf("user=%d,event=%d", userID, eventID))
	return f.remove(func(b *domain.Booking) bool { return b.UserID == userID && b.EventID == eventID }), nil
}

func (f *fakeBookingRepo) remove(match func(*domain.Booking) bool) int64 {
	var kept []*domain.Booking
	var n int64
	for _, b := range f.bookings {
		if match(b) {
			n++
			continue
		}
		kept = append(kept, b)
	}
	f.bookings = kept
	return n
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[int]*domain.User
	nextID    int
	getErr    error
	createErr error
	writes    int
	deletes   []int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[int]*domain.User), nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.writes++
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for id := 1; id < f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.writes++
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeAdminRepo implements domain.AdminRepository for tests.
type fakeAdminRepo struct {
	byID    map[int]*domain.Admin
	nextID  int
	writes  int
	deletes int
}

func newFakeAdminRepo(admins ...*domain.Admin) *fakeAdminRepo {
	f := &fakeAdminRepo{byID: make(map[int]*domain.Admin), nextID: 1}
	for _, a := range admins {
		f.byID[a.ID] = a
		if a.ID >= f.nextID {
			f.nextID = a.ID + 1
		}
	}
	return f
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	f.writes++
	a.ID = f.nextID
	f.nextID++
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAdminRepo) List(ctx context.Context) ([]*domain.Admin, error) {
	var out []*domain.Admin
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id int) (*domain.Admin, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdminRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeAdminRepo) Update(ctx context.Context, a *domain.Admin) error {
	f.writes++
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAdminRepo) Delete(ctx context.Context, id int) error {
	f.deletes++
	delete(f.byID, id)
	return nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	err error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err    error
	expiry time.Duration
}

func (f *fakeTokenIssuer) Issue(userID int, name, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.expiry = expiry
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

// callLog records peer calls in order; it is shared by the peer fakes so tests
// can assert the cross-service call sequence.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// fakeEventClient implements domain.EventClient for tests.
type fakeEventClient struct {
	log     *callLog
	events  map[int]*domain.Event
	getErr  error
	listErr error
	search  []*domain.Event
}

func (f *fakeEventClient) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	f.log.record("events.List")
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventClient) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	f.log.record("events.Get(%d)", id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventClient) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	f.log.record("events.SearchByName(%s)", keyword)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.search, nil
}

func (f *fakeEventClient) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	f.log.record("events.ListByLocation(%s)", location)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.search, nil
}

func (f *fakeEventClient) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	f.log.record("events.Create")
	cp := *e
	cp.ID = 99
	return &cp, nil
}

func (f *fakeEventClient) UpdateEvent(ctx context.Context, id int, e *domain.Event) (*domain.Event, error) {
	f.log.record("events.Update(%d)", id)
	return e, nil
}

func (f *fakeEventClient) DeleteEvent(ctx context.Context, id int) error {
	f.log.record("events.Delete(%d)", id)
	return nil
}

// fakeBookingClient implements domain.BookingClient for tests.
type fakeBookingClient struct {
	log       *callLog
	created   []*domain.Booking
	byUser    []*domain.Booking
	listErr   error
	createErr error
	deleteErr error
	ctxErrs   []error
}

func (f *fakeBookingClient) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	f.log.record("bookings.List")
	return f.byUser, f.listErr
}

func (f *fakeBookingClient) GetBooking(ctx context.Context, id int) (*domain.Booking, error) {
	f.log.record("bookings.Get(%d)", id)
	return nil, domain.ErrNotFound
}

func (f *fakeBookingClient) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	f.log.record("bookings.ListByUserID(%d)", userID)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byUser, nil
}

func (f *fakeBookingClient) CreateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.log.record("bookings.Create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *b
	cp.ID = len(f.created) + 1
	f.created = append(f.created, &cp)
	return &cp, nil
}

func (f *fakeBookingClient) DeleteBooking(ctx context.Context, id int) error {
	f.log.record("bookings.Delete(%d)", id)
	return f.deleteErr
}

func (f *fakeBookingClient) DeleteByEventID(ctx context.Context, eventID int) error {
	f.log.record("bookings.DeleteByEventID(%d)", eventID)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.deleteErr
}

func (f *fakeBookingClient) DeleteByUserID(ctx context.Context, userID int) error {
	f.log.record("bookings.DeleteByUserID(%d)", userID)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.deleteErr
}

func (f *fakeBookingClient) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) error {
	f.log.record("bookings.DeleteByUserAndEvent(%d,%d)", userID, eventID)
	return f.deleteErr
}

// fakeUserClient implements domain.UserClient for tests.
type fakeUserClient struct {
	log      *callLog
	users    map[int]*domain.User
	getErr   error
	profiles []*domain.UserProfile
	listErr  error
}

func (f *fakeUserClient) ListUsers(ctx context.Context) ([]*domain.User, error) {
	f.log.record("users.List")
	var out []*domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserClient) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	f.log.record("users.ListProfiles")
	return f.profiles, f.listErr
}

func (f *fakeUserClient) GetUser(ctx context.Context, id int) (*domain.User, error) {
	f.log.record("users.Get(%d)", id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserClient) CreateUser(ctx context.Context, creds domain.UserCredentials) error {
	f.log.record("users.Create")
	return nil
}

func (f *fakeUserClient) UpdateUser(ctx context.Context, id int, creds domain.UserCredentials) (*domain.User, error) {
	f.log.record("users.Update(%d)", id)
	return &domain.User{ID: id, Name: creds.Name}, nil
}

func (f *fakeUserClient) DeleteUser(ctx context.Context, id int) error {
	f.log.record("users.Delete(%d)", id)
	return nil
}

func (f *fakeUserClient) Authenticate(ctx context.Context, name, password string) (*domain.AuthResult, error) {
	return nil, errors.ErrUnsupported
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	welcome      []*domain.WelcomeEmailData
	confirmation []*domain.BookingConfirmationEmailData
	err          error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	f.welcome = append(f.welcome, data)
	return f.err
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	f.confirmation = append(f.confirmation, data)
	return f.err
}
