package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// EventAdminController serves the /admins event administration routes on the
// admin and security services.
type EventAdminController struct {
	Logger  *zap.Logger
	Service domain.EventAdminService
}

func NewEventAdminController(logger *zap.Logger, svc domain.EventAdminService) *EventAdminController {
	return &EventAdminController{Logger: logger, Service: svc}
}

// CreateEvent godoc
// @Summary Create an event through the event service
// @Tags event-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admins/create-event [post]
func (c *EventAdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.event())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Replace an event through the event service
// @Tags event-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admins/update-event/{id} [put]
func (c *EventAdminController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, req.event())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event through the event service
// @Tags event-admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admins/delete-event/{id} [delete]
func (c *EventAdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	msg, err := c.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}

// ListEvents godoc
// @Summary List events
// @Tags event-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Router /admins/get-events [get]
func (c *EventAdminController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListBookings godoc
// @Summary List bookings
// @Tags event-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Router /admins/get-bookings [get]
func (c *EventAdminController) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListBookings(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// ListUsers godoc
// @Summary List user profiles
// @Tags event-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the user profiles"
// @Router /admins/get-all-users [get]
func (c *EventAdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListUsers(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}
