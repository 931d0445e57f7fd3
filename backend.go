package alphablend

import (
	"fmt"
	"time"

	"github.com/gogpu/alphablend/internal/blend"
)

// Kind identifies a backend variant.
type Kind int

const (
	// KindFloatReference is the normalized float32 oracle.
	KindFloatReference Kind = iota

	// KindFixedPoint is the premultiplied integer path with the divide table.
	KindFixedPoint

	// KindOpaqueFast assumes an opaque background and skips the division.
	KindOpaqueFast

	// KindVectorNarrow runs the opaque path 2 pixels per 128-bit pass.
	KindVectorNarrow

	// KindVectorWide runs the opaque path 4 pixels per 256-bit pass.
	KindVectorWide

	// KindDeviceOffload runs the float formula as a GPU compute kernel.
	KindDeviceOffload
)

// Kinds lists every backend variant in benchmark order.
func Kinds() []Kind {
	return []Kind{
		KindFloatReference,
		KindFixedPoint,
		KindOpaqueFast,
		KindVectorNarrow,
		KindVectorWide,
		KindDeviceOffload,
	}
}

// String returns the backend name.
func (k Kind) String() string {
	switch k {
	case KindFloatReference:
		return "float"
	case KindFixedPoint:
		return "fixed"
	case KindOpaqueFast:
		return "opaque"
	case KindVectorNarrow:
		return "simd128"
	case KindVectorWide:
		return "simd256"
	case KindDeviceOffload:
		return "gpu"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("alphablend: unknown backend %q", name)
}

// AssumesOpaqueBackground reports whether the backend requires every
// background alpha to be 255. The precondition is not checked.
func (k Kind) AssumesOpaqueBackground() bool {
	switch k {
	case KindOpaqueFast, KindVectorNarrow, KindVectorWide:
		return true
	default:
		return false
	}
}

// ScalarFallback returns the scalar backend that computes the same result
// when k is unsupported on the host.
func (k Kind) ScalarFallback() Kind {
	switch k {
	case KindVectorNarrow, KindVectorWide:
		return KindOpaqueFast
	case KindDeviceOffload:
		return KindFloatReference
	default:
		return k
	}
}

// TranslucentSlack returns the deviation from the float reference that k may
// show on top of the usual rounding tolerance, for a pixel with composite
// alpha alpha over a background that is not opaque. Only KindFixedPoint has
// any: it rounds premultiplied color to 8 bits before unmultiplying, which
// amplifies the rounding by up to 520/alpha. Over an opaque background every
// kind stays within the usual tolerance.
func (k Kind) TranslucentSlack(alpha uint8) int {
	if k != KindFixedPoint {
		return 0
	}
	return blend.FixedSlack(alpha)
}

// Backend composites a foreground image onto a background image in place.
//
// Composite validates both images before touching any pixel, then writes the
// result into bg and returns the time spent compositing. Pixels whose
// composite alpha is zero are left unchanged.
type Backend interface {
	// Kind returns the backend variant.
	Kind() Kind

	// Composite blends fg over bg, writing into bg.
	Composite(bg, fg *Image) (time.Duration, error)
}

// Closer is implemented by backends that hold device resources.
type Closer interface {
	Close()
}
