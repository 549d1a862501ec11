package wizard

import (
	"fmt"

	"bookflow/services/form"
)

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(sessionID string) error {
	return &FlowError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("wizard session %s not found or expired", sessionID),
	}
}

func NewTransitionError(msg string) error {
	return &FlowError{
		Code:    "invalidTransition",
		Message: msg,
	}
}

func NewSubmitInFlightError() error {
	return &FlowError{
		Code:    "submitInFlight",
		Message: "a submission is already in progress for this session",
	}
}

// ValidationError carries the per-field messages of a failed form check.
type ValidationError struct {
	Fields form.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed for %d field(s)", len(e.Fields))
}
