package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a primary-id lookup miss on the addressed entity
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ReferenceNotFoundError represents a supplied foreign id (or id set) that
// does not fully resolve. Unlike NotFoundError it maps to a client error on
// the request body, not on the addressed resource.
type ReferenceNotFoundError struct {
	Message string
}

func (e *ReferenceNotFoundError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ReferenceNotFoundError
func (e *ReferenceNotFoundError) Is(target error) bool {
	t, ok := target.(*ReferenceNotFoundError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AlreadyExistsError represents a uniqueness constraint breach
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on input shape
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrVendorNotFound    = &NotFoundError{Entity: "vendor"}
	ErrAssetNotFound     = &NotFoundError{Entity: "asset"}
	ErrPartNotFound      = &NotFoundError{Entity: "part"}
	ErrTeamNotFound      = &NotFoundError{Entity: "team"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrCategoryNotFound  = &NotFoundError{Entity: "category"}
	ErrWorkOrderNotFound = &NotFoundError{Entity: "work order"}
	ErrProcedureNotFound = &NotFoundError{Entity: "procedure"}
	ErrTeamUserNotFound  = &NotFoundError{Entity: "team user mapping"}
)

// Reference Errors: a supplied relationship id did not resolve. The id-set
// variants report set inequality, not which ids were missing.
var (
	ErrVendorReferenceNotFound    = &ReferenceNotFoundError{Message: "vendor not found"}
	ErrAssetReferenceNotFound     = &ReferenceNotFoundError{Message: "asset not found"}
	ErrProcedureReferenceNotFound = &ReferenceNotFoundError{Message: "procedure not found"}
	ErrTeamReferenceNotFound      = &ReferenceNotFoundError{Message: "team not found"}
	ErrUserReferenceNotFound      = &ReferenceNotFoundError{Message: "user not found"}
	ErrCategoriesNotFound         = &ReferenceNotFoundError{Message: "one or more categories not found"}
	ErrPartsNotFound              = &ReferenceNotFoundError{Message: "one or more parts not found"}
)

// Already Exists Errors
var (
	ErrCategoryExists = &AlreadyExistsError{Entity: "category", Context: ""}
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Context: ""}
	ErrTeamUserExists = &AlreadyExistsError{Entity: "team user mapping", Context: ""}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsReferenceNotFound checks if an error is a ReferenceNotFoundError
func IsReferenceNotFound(err error) bool {
	var refErr *ReferenceNotFoundError
	return errors.As(err, &refErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewReferenceNotFoundError creates a new ReferenceNotFoundError
func NewReferenceNotFoundError(message string) error {
	return &ReferenceNotFoundError{Message: message}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
