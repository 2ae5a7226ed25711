package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// BookingController serves the booking service's /bookings routes.
type BookingController struct {
	Logger  *zap.Logger
	Service domain.BookingService
}

func NewBookingController(logger *zap.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{Logger: logger, Service: svc}
}

// ListBookings godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Router /bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary Get a booking by id
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} helpers.APIResponse "data contains the booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/{id} [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	booking, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// ListByUser godoc
// @Summary List a user's bookings
// @Tags bookings
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/user/{id} [get]
func (c *BookingController) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	bookings, err := c.Service.ListByUserID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// CreateBooking godoc
// @Summary Store a booking snapshot
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body domain.Booking true "Booking snapshot"
// @Success 201 {object} helpers.APIResponse "data contains the stored booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if !helpers.DecodeAndValidate(w, r, &booking) {
		return
	}
	booking.ID = 0
	if err := c.Service.Create(r.Context(), &booking); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &booking)
}

// Register godoc
// @Summary Register a user to an event
// @Description Looks the user up in the security service and the event in the event service, then stores the booking.
// @Tags bookings
// @Produce json
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 201 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/user/{userId}/event/{eventId} [post]
func (c *BookingController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	msg, err := c.Service.Register(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/{id} [delete]
func (c *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteByEvent godoc
// @Summary Delete every booking for an event
// @Tags bookings
// @Param eventId path int true "Event ID"
// @Success 204
// @Router /bookings/event/{eventId} [delete]
func (c *BookingController) DeleteByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	if err := c.Service.DeleteByEventID(r.Context(), eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteByUser godoc
// @Summary Delete every booking for a user
// @Tags bookings
// @Param userId path int true "User ID"
// @Success 204
// @Router /bookings/delete-booking-for-user/{userId} [delete]
func (c *BookingController) DeleteByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.Service.DeleteByUserID(r.Context(), userID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteByUserAndEvent godoc
// @Summary Cancel a user's bookings for an event
// @Tags bookings
// @Produce json
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the confirmation message"
// @Router /bookings/user/{userId}/event/{eventId} [delete]
func (c *BookingController) DeleteByUserAndEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	msg, err := c.Service.DeleteByUserAndEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}
