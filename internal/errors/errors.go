package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
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

// ValidationError represents a validation error
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

// GenerationError represents a failure of the AI plan-generation
// collaborator: timeout, malformed response, or an empty plan. No phases are
// created when a GenerationError is returned.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("plan generation failed: %s", e.Reason)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrProjectNotFound  = &NotFoundError{Entity: "project"}
	ErrPhaseNotFound    = &NotFoundError{Entity: "project phase"}
	ErrTemplateNotFound = &NotFoundError{Entity: "plan template"}
)

// Already Exists Errors
var (
	ErrTeamExists    = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrProjectExists = &AlreadyExistsError{Entity: "project", Context: "with this name in the team"}
)

// Business Logic Errors
var (
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidDateRange   = errors.New("start date must be on or before end date")
	ErrEmptyPlan          = &GenerationError{Reason: "collaborator returned zero phases"}
)

// Configuration Errors
var (
	ErrPlannerNotConfigured = &ConfigurationError{Message: "plan generator is not configured: PLANNER_API_KEY not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var generationErr *GenerationError
	return errors.As(err, &generationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewGenerationError creates a new GenerationError
func NewGenerationError(reason string) error {
	return &GenerationError{Reason: reason}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
