package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "project"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPhaseNotFound, ErrPhaseNotFound))
		assert.False(t, errors.Is(ErrPhaseNotFound, ErrProjectNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPhaseNotFound))
		assert.False(t, IsNotFound(ErrInvalidDateRange))
	})

	t.Run("IsNotFound unwraps", func(t *testing.T) {
		wrapped := fmt.Errorf("list phases: %w", ErrProjectNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project", Context: "with this name in the team"}
		assert.Equal(t, "project already exists with this name in the team", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_date", Message: "must be on or before end_date"}
		assert.Equal(t, "validation error: start_date - must be on or before end_date", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "phase name is required"}
		assert.Equal(t, "validation error: phase name is required", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("end_date", "unparsable date")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrPhaseNotFound))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &GenerationError{Reason: "request timed out"}
		assert.Equal(t, "plan generation failed: request timed out", err.Error())
	})

	t.Run("IsGeneration helper", func(t *testing.T) {
		assert.True(t, IsGeneration(NewGenerationError("malformed response")))
		assert.True(t, IsGeneration(ErrEmptyPlan))
		assert.False(t, IsGeneration(ErrPhaseNotFound))
	})

	t.Run("IsGeneration unwraps", func(t *testing.T) {
		wrapped := fmt.Errorf("generate plan: %w", ErrEmptyPlan)
		assert.True(t, IsGeneration(wrapped))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing key")
		assert.Equal(t, "missing key", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	assert.Error(t, ErrInvalidStatus)
	assert.Error(t, ErrInvalidProjectType)
	assert.Error(t, ErrInvalidDateRange)
	assert.Error(t, ErrPlannerNotConfigured)
}
