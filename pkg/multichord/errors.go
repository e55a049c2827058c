package multichord

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// EmitError represents a failure to write the descriptor.
type EmitError struct {
	Format Format
	Err    error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit %s descriptor: %v", e.Format, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

// NewEmitError creates a new EmitError.
func NewEmitError(format Format, err error) *EmitError {
	return &EmitError{
		Format: format,
		Err:    err,
	}
}
