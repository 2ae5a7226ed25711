package peer

import (
	"context"
	"fmt"
	"net/http"

	"eventbooking/internal/domain"
)

type bookingClient struct {
	*client
}

// NewBookingClient returns the BOOKING-SERVICE client rooted at baseURL.
func NewBookingClient(baseURL string, httpClient *http.Client) domain.BookingClient {
	return &bookingClient{client: newClient(domain.BookingServiceName, baseURL, httpClient)}
}

func (c *bookingClient) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *bookingClient) GetBooking(ctx context.Context, id int) (*domain.Booking, error) {
	path := fmt.Sprintf("/bookings/%d", id)
	var booking *domain.Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &booking); err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%s GET %s: empty body: %w", c.service, path, domain.ErrNotFound)
	}
	return booking, nil
}

func (c *bookingClient) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/user/%d", userID), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *bookingClient) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := &domain.Booking{}
	if err := c.do(ctx, http.MethodPost, "/bookings", booking, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *bookingClient) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

func (c *bookingClient) DeleteByEventID(ctx context.Context, eventID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/event/%d", eventID), nil, nil)
}

func (c *bookingClient) DeleteByUserID(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/delete-booking-for-user/%d", userID), nil, nil)
}

func (c *bookingClient) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/user/%d/event/%d", userID, eventID), nil, nil)
}
