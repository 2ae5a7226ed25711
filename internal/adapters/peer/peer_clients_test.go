package peer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestEventClient(t *testing.T) {
	conf := map[string]any{"id": 2, "name": "Conf", "date": "15-11-2025", "location": "Online", "venue": "Zoom", "description": "d"}
	srv, seen := newPeer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			writeEnvelope(w, http.StatusCreated, conf)
		case r.Method == http.MethodDelete:
			writeEnvelope(w, http.StatusOK, "Event deleted successfully")
		case r.URL.Path == "/events/2" || r.Method == http.MethodPut:
			writeEnvelope(w, http.StatusOK, conf)
		default:
			writeEnvelope(w, http.StatusOK, []any{conf})
		}
	})
	c := NewEventClient(srv.URL, srv.Client())
	ctx := context.Background()

	e, err := c.GetEvent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &domain.Event{ID: 2, Name: "Conf", Date: domain.NewDate(2025, time.November, 15), Location: "Online", Venue: "Zoom", Description: "d"}, e)

	list, err := c.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = c.SearchByName(ctx, "tech conf")
	require.NoError(t, err)
	_, err = c.ListByLocation(ctx, "New York")
	require.NoError(t, err)

	created, err := c.CreateEvent(ctx, &domain.Event{Name: "Conf"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	_, err = c.UpdateEvent(ctx, 2, &domain.Event{Name: "Conf"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteEvent(ctx, 2))

	assert.Equal(t, []string{
		"GET /events/2",
		"GET /events",
		"GET /events/name/tech%20conf",
		"GET /events/location/New%20York",
		"POST /events",
		"PUT /events/2",
		"DELETE /events/2",
	}, seen.paths())

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(seen.all()[4].Body), &body))
	assert.Equal(t, "Conf", body["name"])
	assert.Nil(t, body["date"])
}

func TestEventClient_EmptyBodyIsNotFound(t *testing.T) {
	srv, _ := newPeer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil)
	})
	_, err := NewEventClient(srv.URL, srv.Client()).GetEvent(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingClient(t *testing.T) {
	srv, seen := newPeer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeEnvelope(w, http.StatusCreated, map[string]any{"id": 10, "userId": 1, "userName": "Alice", "eventId": 2, "eventName": "Conf"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			if r.URL.Path == "/bookings/10" {
				writeEnvelope(w, http.StatusOK, map[string]any{"id": 10})
				return
			}
			writeEnvelope(w, http.StatusOK, []any{map[string]any{"id": 10}})
		}
	})
	c := NewBookingClient(srv.URL, srv.Client())
	ctx := context.Background()

	snapshot := &domain.Booking{UserID: 1, UserName: "Alice", EventID: 2, EventName: "Conf", Date: domain.NewDate(2025, time.November, 15), Location: "Online", Venue: "Zoom"}
	created, err := c.CreateBooking(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	_, err = c.ListBookings(ctx)
	require.NoError(t, err)
	b, err := c.GetBooking(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, b.ID)
	byUser, err := c.ListByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	require.NoError(t, c.DeleteBooking(ctx, 10))
	require.NoError(t, c.DeleteByEventID(ctx, 2))
	require.NoError(t, c.DeleteByUserID(ctx, 1))
	require.NoError(t, c.DeleteByUserAndEvent(ctx, 1, 2))

	assert.Equal(t, []string{
		"POST /bookings",
		"GET /bookings",
		"GET /bookings/10",
		"GET /bookings/user/1",
		"DELETE /bookings/10",
		"DELETE /bookings/event/2",
		"DELETE /bookings/delete-booking-for-user/1",
		"DELETE /bookings/user/1/event/2",
	}, seen.paths())
	assert.JSONEq(t,
		`{"id":0,"userId":1,"userName":"Alice","eventId":2,"eventName":"Conf","date":"15-11-2025","location":"Online","venue":"Zoom"}`,
		seen.all()[0].Body)
}

func TestUserClients(t *testing.T) {
	users := []any{
		map[string]any{"id": 1, "name": "alice", "email": "a@b.com", "phone": "0123456789", "role": "USER"},
	}
	handler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			writeEnvelope(w, http.StatusOK, "User deleted successfully")
		case r.Method == http.MethodPost && r.URL.Path == "/auth/authenticate":
			writeEnvelope(w, http.StatusOK, map[string]any{"id": 1, "token": "jwt", "role": "USER"})
		case r.Method == http.MethodPost:
			writeEnvelope(w, http.StatusCreated, users[0])
		case r.URL.Path == "/users" || r.URL.Path == "/users/fetch" || r.URL.Path == "/auth/get":
			writeEnvelope(w, http.StatusOK, users)
		default:
			writeEnvelope(w, http.StatusOK, users[0])
		}
	}

	tests := []struct {
		name      string
		newClient func(string, *http.Client) domain.UserClient
		wantPaths []string
		canAuth   bool
	}{
		{
			name:      "user service",
			newClient: NewUserServiceClient,
			wantPaths: []string{"GET /users", "GET /users/fetch", "GET /users/1", "POST /users", "PUT /users/1", "DELETE /users/1"},
		},
		{
			name:      "security service",
			newClient: NewSecurityServiceClient,
			wantPaths: []string{"GET /auth/get", "GET /auth/get", "GET /auth/get/1", "POST /auth/signup", "PUT /auth/update/1", "DELETE /auth/delete/1", "POST /auth/authenticate"},
			canAuth:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, seen := newPeer(t, handler)
			c := tt.newClient(srv.URL, srv.Client())
			ctx := context.Background()

			list, err := c.ListUsers(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)

			profiles, err := c.ListProfiles(ctx)
			require.NoError(t, err)
			assert.Equal(t, []*domain.UserProfile{{ID: 1, Name: "alice", Email: "a@b.com", Phone: "0123456789"}}, profiles)

			u, err := c.GetUser(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, "alice", u.Name)
			assert.Empty(t, u.PasswordHash)

			creds := domain.UserCredentials{Name: "alice", Email: "a@b.com", Password: "pw", Role: "USER"}
			require.NoError(t, c.CreateUser(ctx, creds))
			_, err = c.UpdateUser(ctx, 1, creds)
			require.NoError(t, err)
			require.NoError(t, c.DeleteUser(ctx, 1))

			res, err := c.Authenticate(ctx, "alice", "pw")
			if tt.canAuth {
				require.NoError(t, err)
				assert.Equal(t, &domain.AuthResult{UserID: 1, Token: "jwt", Role: "USER"}, res)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnsupported))
			}

			assert.Equal(t, tt.wantPaths, seen.paths())
		})
	}
}
