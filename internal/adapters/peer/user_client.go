package peer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"eventbooking/internal/domain"
)

// userRoutes are the paths of one user-owning service.
type userRoutes struct {
	list     string
	profiles string // empty when the service has no projection endpoint
	byID     string // format string taking the id
	create   string
	update   string
	delete   string
	auth     string // empty when the service does not authenticate
}

var (
	userServiceRoutes = userRoutes{
		list:     "/users",
		profiles: "/users/fetch",
		byID:     "/users/%d",
		create:   "/users",
		update:   "/users/%d",
		delete:   "/users/%d",
	}
	securityServiceRoutes = userRoutes{
		list:   "/auth/get",
		byID:   "/auth/get/%d",
		create: "/auth/signup",
		update: "/auth/update/%d",
		delete: "/auth/delete/%d",
		auth:   "/auth/authenticate",
	}
)

type userClient struct {
	*client
	routes userRoutes
}

// NewUserServiceClient returns the USER-SERVICE client rooted at baseURL.
func NewUserServiceClient(baseURL string, httpClient *http.Client) domain.UserClient {
	return &userClient{client: newClient(domain.UserServiceName, baseURL, httpClient), routes: userServiceRoutes}
}

// NewSecurityServiceClient returns the SECURITY-SERVICE client rooted at baseURL.
func NewSecurityServiceClient(baseURL string, httpClient *http.Client) domain.UserClient {
	return &userClient{client: newClient(domain.SecurityServiceName, baseURL, httpClient), routes: securityServiceRoutes}
}

func (c *userClient) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	if err := c.do(ctx, http.MethodGet, c.routes.list, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListProfiles uses the projection endpoint when the peer has one and projects client-side otherwise.
func (c *userClient) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	if c.routes.profiles != "" {
		profiles := make([]*domain.UserProfile, 0)
		if err := c.do(ctx, http.MethodGet, c.routes.profiles, nil, &profiles); err != nil {
			return nil, err
		}
		return profiles, nil
	}
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]*domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

func (c *userClient) GetUser(ctx context.Context, id int) (*domain.User, error) {
	path := fmt.Sprintf(c.routes.byID, id)
	var user *domain.User
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%s GET %s: empty body: %w", c.service, path, domain.ErrNotFound)
	}
	return user, nil
}

func (c *userClient) CreateUser(ctx context.Context, creds domain.UserCredentials) error {
	return c.do(ctx, http.MethodPost, c.routes.create, creds, nil)
}

func (c *userClient) UpdateUser(ctx context.Context, id int, creds domain.UserCredentials) (*domain.User, error) {
	updated := &domain.User{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf(c.routes.update, id), creds, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *userClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf(c.routes.delete, id), nil, nil)
}

func (c *userClient) Authenticate(ctx context.Context, name, password string) (*domain.AuthResult, error) {
	if c.routes.auth == "" {
		return nil, fmt.Errorf("%s: authenticate: %w", c.service, errors.ErrUnsupported)
	}
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: name, Password: password}
	result := &domain.AuthResult{}
	if err := c.do(ctx, http.MethodPost, c.routes.auth, body, result); err != nil {
		return nil, err
	}
	return result, nil
}
