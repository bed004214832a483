package conversation

import "fmt"

// InputError indicates a malformed conversation log. It aborts analysis
// entirely, since no component can proceed without valid input.
type InputError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid conversation log: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid conversation log: %s", e.Message)
}

// Unwrap returns the underlying cause error.
func (e *InputError) Unwrap() error { return e.Cause }

// NewInputError creates a new InputError.
func NewInputError(message string, cause error) *InputError {
	return &InputError{Message: message, Cause: cause}
}
