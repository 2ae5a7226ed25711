// Package peer implements the REST clients one service uses to call another.
// Every call is bounded by the http.Client timeout and is never retried.
package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/requestid"
)

// DefaultTimeout bounds a peer call when no client is supplied.
const DefaultTimeout = 5 * time.Second

// StatusError is a non-2xx answer from a peer.
// It matches domain.ErrNotFound for 404 and domain.ErrPeerUnavailable for 5xx.
type StatusError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s %s: status %d: %s", e.Service, e.Method, e.Path, e.StatusCode, msg)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrPeerUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// envelope mirrors the response body written by every service.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// client is the transport shared by the per-peer clients.
type client struct {
	service string
	baseURL string
	http    *http.Client
}

func newClient(service, baseURL string, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &client{
		service: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// do sends body as JSON (when non-nil) and decodes the envelope's data into out (when non-nil).
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s %s: encode request: %w", c.service, method, path, err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s %s: failed to create request: %w", c.service, method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s %s: %w: %w", c.service, method, path, domain.ErrPeerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Service: c.service, Method: method, Path: path, StatusCode: resp.StatusCode}
		var env envelope
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err == nil && env.Error != nil {
			statusErr.Code = env.Error.Code
			statusErr.Message = env.Error.Message
		}
		return statusErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s %s: failed to decode response: %w", c.service, method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s %s: failed to decode data: %w", c.service, method, path, err)
	}
	return nil
}
