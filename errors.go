package sketch

import (
	"errors"
	"fmt"
)

// MaxSurfacePixels bounds the canvas area an engine will allocate.
const MaxSurfacePixels = 1 << 26

// ErrNotReady is returned by export operations on an engine whose render
// surface does not exist: a zero-value Engine that was not built with New,
// or one that has been closed. It indicates a programming error; retry
// after construction completes.
var ErrNotReady = errors.New("sketch: render surface not ready")

var (
	errInvalidSize     = errors.New("dimensions must be positive")
	errSurfaceTooLarge = errors.New("surface exceeds maximum pixel count")
)

// RenderSurfaceError reports an unrecoverable failure of the render surface:
// it could not be allocated, or its contents could not be encoded.
type RenderSurfaceError struct {
	Width, Height int
	Err           error
}

func (e *RenderSurfaceError) Error() string {
	return fmt.Sprintf("sketch: render surface %dx%d: %v", e.Width, e.Height, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RenderSurfaceError) Unwrap() error {
	return e.Err
}

// checkSurfaceSize validates canvas dimensions before allocation.
func checkSurfaceSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return &RenderSurfaceError{Width: width, Height: height, Err: errInvalidSize}
	}
	if int64(width)*int64(height) > MaxSurfacePixels {
		return &RenderSurfaceError{Width: width, Height: height, Err: errSurfaceTooLarge}
	}
	return nil
}
