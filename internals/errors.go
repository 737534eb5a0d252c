package internals

import (
	"errors"
	"fmt"
)

var ErrInvalidDate = errors.New("invalid date")

// ProcessingError means the input was well formed but could not be resolved
// against the reference data, e.g. an unknown airport or an unparsable date.
type ProcessingError struct {
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func newProcessingError(cause error, format string, args ...any) *ProcessingError {
	return &ProcessingError{Message: fmt.Sprintf(format, args...), Err: cause}
}
