package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors shared by every service.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateName      = errors.New("this username is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPeerUnavailable    = errors.New("peer service unavailable")
)

// Entity names the record type an error refers to.
type Entity string

const (
	EntityAdmin   Entity = "Admin"
	EntityEvent   Entity = "Event"
	EntityUser    Entity = "User"
	EntityBooking Entity = "Booking"
)

// NotFoundError is the single not-found result for every entity, whether the
// miss happened in the local store or in a peer service.
type NotFoundError struct {
	Entity Entity
	Field  string
	Value  string
}

// NotFound returns a NotFoundError for a lookup by primary key.
func NotFound(entity Entity, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: "id", Value: strconv.Itoa(id)}
}

// NotFoundBy returns a NotFoundError for a lookup by any other attribute.
func NotFoundBy(entity Entity, field, value string) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %s", e.Entity, e.Field, e.Value)
}

// Is lets errors.Is(err, ErrNotFound) match regardless of entity.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError enumerates every violated field constraint of an input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validator is implemented by records and request bodies that check their own fields.
// Validate returns a slice of violation messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// Validate runs v.Validate and wraps any violations in a ValidationError.
func Validate(v Validator) error {
	if errs := v.Validate(); len(errs) > 0 {
		return &ValidationError{Violations: errs}
	}
	return nil
}
