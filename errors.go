package alphablend

import (
	"errors"
	"fmt"
)

// Errors returned by backends.
var (
	// ErrUnsupported is returned when a backend needs a capability the host
	// lacks: a vector instruction extension or a compute device. Callers are
	// expected to fall back to a slower backend.
	ErrUnsupported = errors.New("alphablend: unsupported on this host")

	// ErrDimensionMismatch is returned when background and foreground differ
	// in size. It is detected before any pixel is touched.
	ErrDimensionMismatch = errors.New("alphablend: image dimensions differ")

	// ErrDeviceTransfer is returned when a host-device copy, a kernel
	// submission or the completion wait fails. Only that call is aborted.
	ErrDeviceTransfer = errors.New("alphablend: device transfer failed")

	// ErrDivisionDegenerate is returned by SourceOver when both pixels are
	// fully transparent. Bulk backends leave such pixels unchanged silently.
	ErrDivisionDegenerate = errors.New("alphablend: composite alpha is zero")

	// ErrNilImage is returned when a backend receives a nil image.
	ErrNilImage = errors.New("alphablend: nil image")
)

// Validate checks the preconditions shared by every backend.
func Validate(bg, fg *Image) error {
	if bg == nil || fg == nil {
		return ErrNilImage
	}
	if !bg.SameSize(fg) {
		return fmt.Errorf("%w: background %dx%d, foreground %dx%d",
			ErrDimensionMismatch, bg.width, bg.height, fg.width, fg.height)
	}
	return nil
}
