package tj

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tj-go/pkg/tj/graph"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptyInput indicates there is nothing to plot.
var ErrEmptyInput = graph.ErrEmptyInput

// ErrInvalidMode indicates an unknown output mode.
var ErrInvalidMode = errors.New("invalid mode")

// RenderError represents an error while rendering in a given mode.
type RenderError struct {
	Mode Mode
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Mode, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(mode Mode, err error) *RenderError {
	return &RenderError{
		Mode: mode,
		Err:  err,
	}
}
