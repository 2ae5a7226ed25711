package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// UserController serves user CRUD and the user-facing event workflows. The
// user service mounts it under /users and the security service under /auth.
type UserController struct {
	Logger  *zap.Logger
	Service domain.UserService
}

func NewUserController(logger *zap.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the users"
// @Router /users [get]
// @Router /auth/get [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// ListProfiles godoc
// @Summary List user profiles
// @Description Reduced projection with id, name, email and phone.
// @Tags users
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the profiles"
// @Router /users/fetch [get]
func (c *UserController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := c.Service.ListProfiles(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profiles)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [get]
// @Router /auth/get/{id} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a user
// @Description The password is stored hashed. An empty role defaults to USER.
// @Tags users
// @Accept json
// @Produce json
// @Param body body UserRequest true "User data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := req.user()
	if err := c.Service.Create(r.Context(), user, req.Password); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary Replace a user
// @Description The password is re-hashed. An empty role keeps the stored role.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body UserRequest true "User data"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [put]
// @Router /auth/update/{id} [put]
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := req.user()
	user.ID = id
	if err := c.Service.Update(r.Context(), user, req.Password); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletes the user and then their bookings. A failed booking cleanup does not fail the request.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [delete]
// @Router /auth/delete/{id} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	msg, err := c.Service.Delete(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}

// ListEvents godoc
// @Summary List events from the event service
// @Tags users
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /users/get-events [get]
func (c *UserController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// SearchEventsByName godoc
// @Summary Search events by name
// @Tags users
// @Produce json
// @Param keyword path string true "Name keyword"
// @Success 200 {object} helpers.APIResponse "data contains the matching events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/search-name/{keyword} [get]
func (c *UserController) SearchEventsByName(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.SearchEventsByName(r.Context(), r.PathValue("keyword"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// SearchEventsByLocation godoc
// @Summary Search events by location
// @Tags users
// @Produce json
// @Param keyword path string true "Location"
// @Success 200 {object} helpers.APIResponse "data contains the matching events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/search-location/{keyword} [get]
func (c *UserController) SearchEventsByLocation(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.SearchEventsByLocation(r.Context(), r.PathValue("keyword"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// RegisterToEvent godoc
// @Summary Register a user to an event
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 201 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /users/{userId}/register-event/{eventId} [post]
func (c *UserController) RegisterToEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	msg, err := c.Service.RegisterToEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// ListBookings godoc
// @Summary List a user's bookings
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/user-id/{id} [get]
func (c *UserController) ListBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	bookings, err := c.Service.ListBookings(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary Cancel a user's booking for an event
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/user/{userId}/event/{eventId} [delete]
func (c *UserController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	msg, err := c.Service.CancelBooking(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}
