package tinyvg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rendering core.
var (
	// ErrOutOfScratch is returned when a path's flattened output would
	// exceed the fixed-capacity point or sub-path scratch buffers.
	ErrOutOfScratch = errors.New("tinyvg: scratch buffer exhausted")

	// ErrInvalidGeometry is returned when a non-finite coordinate reaches
	// the flattener's per-point assertion boundary.
	ErrInvalidGeometry = errors.New("tinyvg: non-finite coordinate")

	// ErrOutputFull is returned when a FallibleFramebuffer rejects a
	// pixel write.
	ErrOutputFull = errors.New("tinyvg: framebuffer write failed")
)

// RenderError wraps one of the sentinel errors above with the index and
// kind of the DrawCommand that triggered it.
type RenderError struct {
	CommandIndex int
	CommandKind  string
	Err          error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("tinyvg: render command %d (%s): %v", e.CommandIndex, e.CommandKind, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
