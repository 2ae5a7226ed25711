package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
)

// Guard wraps a handler with an access check. A nil Guard lets every request through.
type Guard func(http.HandlerFunc) http.HandlerFunc

func (g Guard) wrap(next http.HandlerFunc) http.HandlerFunc {
	if g == nil {
		return next
	}
	return g(next)
}

// NewEventRouter initializes the event service routes.
func NewEventRouter(events *controllers.EventController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{id}", events.GetEvent)
	mux.HandleFunc("GET /events/name/{keyword}", events.SearchByName)
	mux.HandleFunc("GET /events/location/{keyword}", events.ListByLocation)
	mux.HandleFunc("POST /events", events.CreateEvent)
	mux.HandleFunc("PUT /events/{id}", events.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", events.DeleteEvent)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return mux
}

// NewBookingRouter initializes the booking service routes.
func NewBookingRouter(bookings *controllers.BookingController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /bookings", bookings.ListBookings)
	mux.HandleFunc("GET /bookings/{id}", bookings.GetBooking)
	mux.HandleFunc("GET /bookings/user/{id}", bookings.ListByUser)
	mux.HandleFunc("POST /bookings", bookings.CreateBooking)
	mux.HandleFunc("POST /bookings/user/{userId}/event/{eventId}", bookings.Register)
	mux.HandleFunc("DELETE /bookings/{id}", bookings.DeleteBooking)

	// Cascade and cancellation targets
	mux.HandleFunc("DELETE /bookings/event/{eventId}", bookings.DeleteByEvent)
	mux.HandleFunc("DELETE /bookings/delete-booking-for-user/{userId}", bookings.DeleteByUser)
	mux.HandleFunc("DELETE /bookings/user/{userId}/event/{eventId}", bookings.DeleteByUserAndEvent)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return mux
}

// NewUserRouter initializes the user service routes.
func NewUserRouter(users *controllers.UserController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", users.ListUsers)
	mux.HandleFunc("GET /users/fetch", users.ListProfiles)
	mux.HandleFunc("GET /users/{id}", users.GetUser)
	mux.HandleFunc("POST /users", users.CreateUser)
	mux.HandleFunc("PUT /users/{id}", users.UpdateUser)
	mux.HandleFunc("DELETE /users/{id}", users.DeleteUser)

	// Event browsing and bookings
	mux.HandleFunc("GET /users/get-events", users.ListEvents)
	mux.HandleFunc("GET /users/search-name/{keyword}", users.SearchEventsByName)
	mux.HandleFunc("GET /users/search-location/{keyword}", users.SearchEventsByLocation)
	mux.HandleFunc("POST /users/{userId}/register-event/{eventId}", users.RegisterToEvent)
	mux.HandleFunc("GET /users/user-id/{id}", users.ListBookings)
	mux.HandleFunc("DELETE /users/user/{userId}/event/{eventId}", users.CancelBooking)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return mux
}

// NewSecurityRouter initializes the security service routes. adminOnly guards event administration.
func NewSecurityRouter(
	auth *controllers.AuthController,
	users *controllers.UserController,
	eventAdmin *controllers.EventAdminController,
	adminOnly Guard,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/signup", auth.SignUp)
	mux.HandleFunc("POST /auth/authenticate", auth.Authenticate)

	// User management
	mux.HandleFunc("GET /auth/get", users.ListUsers)
	mux.HandleFunc("GET /auth/get/{id}", users.GetUser)
	mux.HandleFunc("PUT /auth/update/{id}", users.UpdateUser)
	mux.HandleFunc("DELETE /auth/delete/{id}", users.DeleteUser)
	mux.HandleFunc("POST /users/{userId}/register-event/{eventId}", users.RegisterToEvent)

	registerEventAdmin(mux, eventAdmin, adminOnly)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return mux
}

// NewAdminRouter initializes the admin service routes. guard applies to every route.
func NewAdminRouter(admins *controllers.AdminController, eventAdmin *controllers.EventAdminController, guard Guard) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /admins", guard.wrap(admins.ListAdmins))
	mux.HandleFunc("POST /admins", guard.wrap(admins.CreateAdmin))
	mux.HandleFunc("GET /admins/{id}", guard.wrap(admins.GetAdmin))
	mux.HandleFunc("PUT /admins/{id}", guard.wrap(admins.UpdateAdmin))
	mux.HandleFunc("DELETE /admins/{id}", guard.wrap(admins.DeleteAdmin))

	registerEventAdmin(mux, eventAdmin, guard)
	mux.HandleFunc("GET /admins/get-all-users", guard.wrap(eventAdmin.ListUsers))

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return mux
}

func registerEventAdmin(mux *http.ServeMux, c *controllers.EventAdminController, guard Guard) {
	mux.HandleFunc("POST /admins/create-event", guard.wrap(c.CreateEvent))
	mux.HandleFunc("PUT /admins/update-event/{id}", guard.wrap(c.UpdateEvent))
	mux.HandleFunc("DELETE /admins/delete-event/{id}", guard.wrap(c.DeleteEvent))
	mux.HandleFunc("GET /admins/get-events", guard.wrap(c.ListEvents))
	mux.HandleFunc("GET /admins/get-bookings", guard.wrap(c.ListBookings))
}

// WithMiddleware applies the middleware shared by every service: request id,
// then request logging, then CORS.
func WithMiddleware(mux http.Handler, logger *zap.Logger, allowedOrigins []string) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
