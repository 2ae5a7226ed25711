package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"eventbooking/internal/domain"
)

type userFixture struct {
	log      *callLog
	repo     *fakeUserRepo
	events   *fakeEventClient
	bookings *fakeBookingClient
	emails   *fakeEmailService
	logs     *observer.ObservedLogs
	svc      domain.UserService
}

func newUserFixture(users ...*domain.User) *userFixture {
	core, logs := observer.New(zapcore.WarnLevel)
	f := &userFixture{
		log:    &callLog{},
		repo:   newFakeUserRepo(users...),
		emails: &fakeEmailService{},
		logs:   logs,
	}
	f.events = &fakeEventClient{log: f.log, events: map[int]*domain.Event{2: conf()}}
	f.bookings = &fakeBookingClient{log: f.log}
	f.svc = NewUserService(f.repo, &fakePasswordHasher{}, f.events, f.bookings, f.emails, zap.New(core))
	return f
}

func TestUserService_Create(t *testing.T) {
	f := newUserFixture()
	u := &domain.User{Name: "bob", Email: "bob@example.com"}
	require.NoError(t, f.svc.Create(context.Background(), u, "secret"))
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, domain.DefaultRole, u.Role)
	assert.Equal(t, "hash-secret", f.repo.byID[1].PasswordHash)

	admin := &domain.User{Name: "root", Role: domain.AdminRole}
	require.NoError(t, f.svc.Create(context.Background(), admin, "pw"))
	assert.Equal(t, domain.AdminRole, admin.Role)
}

func TestUserService_ListProfiles(t *testing.T) {
	f := newUserFixture(alice())
	profiles, err := f.svc.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*domain.UserProfile{{ID: 1, Name: "Alice", Email: "alice@example.com"}}, profiles)
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name     string
		input    *domain.User
		wantErr  string
		wantRole string
	}{
		{
			name:     "empty role keeps stored role",
			input:    &domain.User{ID: 1, Name: "Alice B", Email: "a@b.com"},
			wantRole: domain.DefaultRole,
		},
		{
			name:     "explicit role replaces stored role",
			input:    &domain.User{ID: 1, Name: "Alice", Email: "a@b.com", Role: domain.AdminRole},
			wantRole: domain.AdminRole,
		},
		{
			name:    "missing user",
			input:   &domain.User{ID: 9, Name: "x"},
			wantErr: "User not found with id: 9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(alice())
			err := f.svc.Update(context.Background(), tt.input, "new-pw")
			if tt.wantErr != "" {
				require.ErrorIs(t, err, domain.ErrNotFound)
				assert.EqualError(t, err, tt.wantErr)
				assert.Zero(t, f.repo.writes)
				return
			}
			require.NoError(t, err)
			stored := f.repo.byID[1]
			assert.Equal(t, tt.wantRole, stored.Role)
			assert.Equal(t, tt.input.Name, stored.Name)
			assert.Equal(t, "hash-new-pw", stored.PasswordHash)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("cascades to bookings once", func(t *testing.T) {
		f := newUserFixture(alice())
		msg, err := f.svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "User deleted successfully", msg)
		assert.Equal(t, []string{"bookings.DeleteByUserID(1)"}, f.log.all())
		assert.Empty(t, f.repo.byID)
	})
	t.Run("cascade failure is logged, not returned", func(t *testing.T) {
		f := newUserFixture(alice())
		f.bookings.deleteErr = domain.ErrPeerUnavailable
		msg, err := f.svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "User deleted successfully", msg)
		assert.Equal(t, []string{"bookings.DeleteByUserID(1)"}, f.log.all())
		assert.Equal(t, 1, f.logs.FilterMessage("booking cascade for user failed").Len())
	})
	t.Run("missing user deletes nothing", func(t *testing.T) {
		f := newUserFixture()
		_, err := f.svc.Delete(context.Background(), 7)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User not found with id: 7")
		assert.Empty(t, f.repo.deletes)
		assert.Empty(t, f.log.all())
	})
}

func TestUserService_SearchEvents(t *testing.T) {
	tests := []struct {
		name    string
		search  []*domain.Event
		listErr error
		run     func(domain.UserService) ([]*domain.Event, error)
		wantErr string
	}{
		{
			name:   "name hit",
			search: []*domain.Event{conf()},
			run: func(s domain.UserService) ([]*domain.Event, error) {
				return s.SearchEventsByName(context.Background(), "conf")
			},
		},
		{
			name:    "name remote failure is not found",
			listErr: domain.ErrPeerUnavailable,
			run: func(s domain.UserService) ([]*domain.Event, error) {
				return s.SearchEventsByName(context.Background(), "conf")
			},
			wantErr: "Event not found with name: conf",
		},
		{
			name: "location empty is not found",
			run: func(s domain.UserService) ([]*domain.Event, error) {
				return s.SearchEventsByLocation(context.Background(), "Mars")
			},
			wantErr: "Event not found with location: Mars",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture()
			f.events.search = tt.search
			f.events.listErr = tt.listErr
			got, err := tt.run(f.svc)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, domain.ErrNotFound)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestUserService_ListEvents_PropagatesFailure(t *testing.T) {
	f := newUserFixture()
	f.events.listErr = domain.ErrPeerUnavailable
	_, err := f.svc.ListEvents(context.Background())
	require.ErrorIs(t, err, domain.ErrPeerUnavailable)
}

func TestUserService_RegisterToEvent(t *testing.T) {
	f := newUserFixture(alice())

	msg, err := f.svc.RegisterToEvent(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "User Alice registered to event Conf successfully", msg)
	assert.Equal(t, []string{"events.Get(2)", "bookings.Create"}, f.log.all())

	require.Len(t, f.bookings.created, 1)
	snapshot := *f.bookings.created[0]
	snapshot.ID = 0
	assert.Equal(t, *domain.NewBooking(alice(), conf()), snapshot)

	require.Len(t, f.emails.confirmation, 1)
	assert.Equal(t, &domain.BookingConfirmationEmailData{
		Email:     "alice@example.com",
		UserName:  "Alice",
		EventName: "Conf",
		Date:      "15-11-2025",
		Location:  "Online",
		Venue:     "Zoom",
	}, f.emails.confirmation[0])
}

func TestUserService_RegisterToEvent_Failures(t *testing.T) {
	t.Run("missing user makes no remote call", func(t *testing.T) {
		f := newUserFixture()
		_, err := f.svc.RegisterToEvent(context.Background(), 1, 2)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User not found with id: 1")
		assert.Empty(t, f.log.all())
	})
	t.Run("missing event creates no booking", func(t *testing.T) {
		f := newUserFixture(alice())
		_, err := f.svc.RegisterToEvent(context.Background(), 1, 5)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Event not found with id: 5")
		assert.Equal(t, []string{"events.Get(5)"}, f.log.all())
		assert.Empty(t, f.bookings.created)
	})
	t.Run("booking create failure is surfaced", func(t *testing.T) {
		f := newUserFixture(alice())
		f.bookings.createErr = domain.ErrPeerUnavailable
		_, err := f.svc.RegisterToEvent(context.Background(), 1, 2)
		require.ErrorIs(t, err, domain.ErrPeerUnavailable)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, f.emails.confirmation)
	})
	t.Run("email failure does not change the outcome", func(t *testing.T) {
		f := newUserFixture(alice())
		f.emails.err = errors.New("smtp down")
		msg, err := f.svc.RegisterToEvent(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "User Alice registered to event Conf successfully", msg)
		assert.Equal(t, 1, f.logs.FilterMessage("booking confirmation email failed").Len())
	})
}

func TestUserService_ListBookings(t *testing.T) {
	f := newUserFixture(alice())
	f.bookings.byUser = []*domain.Booking{domain.NewBooking(alice(), conf())}
	got, err := f.svc.ListBookings(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	f.bookings.byUser = nil
	f.bookings.listErr = domain.ErrNotFound
	_, err = f.svc.ListBookings(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Booking not found with userId: 1")

	_, err = f.svc.ListBookings(context.Background(), 4)
	assert.EqualError(t, err, "User not found with id: 4")
}

func TestUserService_CancelBooking(t *testing.T) {
	f := newUserFixture(alice())
	msg, err := f.svc.CancelBooking(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "User Alice successfully cancelled booking for event Conf", msg)
	assert.Equal(t, []string{"events.Get(2)", "bookings.DeleteByUserAndEvent(1,2)"}, f.log.all())
}

func TestUserService_CancelBooking_Failures(t *testing.T) {
	t.Run("missing event issues no delete", func(t *testing.T) {
		f := newUserFixture(alice())
		_, err := f.svc.CancelBooking(context.Background(), 1, 8)
		assert.EqualError(t, err, "Event not found with id: 8")
		assert.Equal(t, []string{"events.Get(8)"}, f.log.all())
	})
	t.Run("delete failure is surfaced", func(t *testing.T) {
		f := newUserFixture(alice())
		f.bookings.deleteErr = domain.ErrPeerUnavailable
		_, err := f.svc.CancelBooking(context.Background(), 1, 2)
		require.ErrorIs(t, err, domain.ErrPeerUnavailable)
	})
}
