package controllers

import (
	"strings"

	"eventbooking/internal/domain"
)

// EventRequest is the request body for creating or replacing an event.
// An id in the body is accepted and ignored; the path id wins on update.
type EventRequest struct {
	ID          int         `json:"id,omitempty"`
	Name        string      `json:"name"`
	Date        domain.Date `json:"date" swaggertype:"string" example:"15-11-2025"`
	Location    string      `json:"location"`
	Venue       string      `json:"venue"`
	Description string      `json:"description"`
}

// Validate implements domain.Validator.
func (e EventRequest) Validate() []string {
	return e.event().Validate()
}

func (e EventRequest) event() *domain.Event {
	return &domain.Event{
		Name:        strings.TrimSpace(e.Name),
		Date:        e.Date,
		Location:    strings.TrimSpace(e.Location),
		Venue:       strings.TrimSpace(e.Venue),
		Description: strings.TrimSpace(e.Description),
	}
}

// AdminRequest is the request body for POST /admins and PUT /admins/{id}.
type AdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements domain.Validator. Every violated rule is reported.
func (a AdminRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "admin name shouldn't be empty")
	}
	if !domain.ValidEmail(a.Email) {
		errs = append(errs, "email id is not valid")
	}
	if a.Password == "" {
		errs = append(errs, "password must not be empty")
	}
	if len(a.Password) > domain.MaxPasswordBytes {
		errs = append(errs, domain.PasswordTooLongMessage)
	}
	return errs
}

// UserRequest is the request body for creating or replacing a user.
// Role is optional and defaults to USER on create.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Validate implements domain.Validator. Every violated rule is reported.
func (u UserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, "username shouldn't be empty")
	}
	if !domain.ValidEmail(u.Email) {
		errs = append(errs, "email id is not valid")
	}
	if u.Password == "" {
		errs = append(errs, "password must not be empty")
	}
	if len(u.Password) > domain.MaxPasswordBytes {
		errs = append(errs, domain.PasswordTooLongMessage)
	}
	if u.Phone != "" && !domain.ValidPhone(u.Phone) {
		errs = append(errs, "invalid phone number entered")
	}
	return errs
}

func (u UserRequest) user() *domain.User {
	return &domain.User{
		Name:  strings.TrimSpace(u.Name),
		Email: strings.TrimSpace(u.Email),
		Phone: u.Phone,
		Role:  strings.TrimSpace(u.Role),
	}
}

// SignUpRequest is the request body for POST /auth/signup. Unlike UserRequest the role is required.
type SignUpRequest struct {
	UserRequest
}

// Validate implements domain.Validator.
func (s SignUpRequest) Validate() []string {
	errs := s.UserRequest.Validate()
	if strings.TrimSpace(s.Role) == "" {
		errs = append(errs, "role must not be empty")
	}
	return errs
}

// AuthenticateRequest is the request body for POST /auth/authenticate.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements domain.Validator.
func (a AuthenticateRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Username) == "" {
		errs = append(errs, "username is required")
	}
	if a.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}
