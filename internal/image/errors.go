package imagepkg

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad is matched by every *LoadError.
	ErrLoad = errors.New("load failure")
	// ErrSurfaceAllocation is matched by every *SurfaceError.
	ErrSurfaceAllocation = errors.New("surface allocation failure")
	ErrEncoding          = errors.New("encoding failure")
	ErrInvalidHeight     = errors.New("target height must be positive")
)

// LoadError reports the first locator of a batch that could not be fetched or decoded.
type LoadError struct {
	Index   int
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (#%d): %v", e.Locator, e.Index, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SurfaceError reports a drawing surface that cannot be allocated.
type SurfaceError struct {
	Width  int
	Height int
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("cannot allocate %dx%d surface", e.Width, e.Height)
}

func (e *SurfaceError) Is(target error) bool { return target == ErrSurfaceAllocation }
