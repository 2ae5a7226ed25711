package peer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventbooking/internal/domain"
)

type eventClient struct {
	*client
}

// NewEventClient returns the EVENT-SERVICE client rooted at baseURL.
func NewEventClient(baseURL string, httpClient *http.Client) domain.EventClient {
	return &eventClient{client: newClient(domain.EventServiceName, baseURL, httpClient)}
}

func (c *eventClient) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *eventClient) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	path := fmt.Sprintf("/events/%d", id)
	var event *domain.Event
	if err := c.do(ctx, http.MethodGet, path, nil, &event); err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%s GET %s: empty body: %w", c.service, path, domain.ErrNotFound)
	}
	return event, nil
}

func (c *eventClient) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	if err := c.do(ctx, http.MethodGet, "/events/name/"+url.PathEscape(keyword), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *eventClient) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	if err := c.do(ctx, http.MethodGet, "/events/location/"+url.PathEscape(location), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *eventClient) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	created := &domain.Event{}
	if err := c.do(ctx, http.MethodPost, "/events", event, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *eventClient) UpdateEvent(ctx context.Context, id int, event *domain.Event) (*domain.Event, error) {
	updated := &domain.Event{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), event, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *eventClient) DeleteEvent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}
