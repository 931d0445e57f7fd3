package alphablend

import (
	"errors"
	"fmt"
)

// Backend preference, fastest first. KindFixedPoint is left out: over a
// translucent background it can exceed the reference tolerance (see
// Kind.TranslucentSlack), and over an opaque one the opaque paths are faster.
var (
	opaquePriority  = []Kind{KindVectorWide, KindVectorNarrow, KindOpaqueFast}
	generalPriority = []Kind{KindDeviceOffload, KindFloatReference}
)

// Select returns the fastest backend the host supports. Backends that assume
// an opaque background are only considered when opaqueBackground is true.
func Select(opaqueBackground bool, opts ...Option) (Backend, error) {
	order := generalPriority
	if opaqueBackground {
		order = append(append([]Kind{}, opaquePriority...), generalPriority...)
	}

	var errs []error
	for _, kind := range order {
		b, err := New(kind, opts...)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		errs = append(errs, err)
		Logger().Debug("alphablend: backend skipped", "backend", kind, "err", err)
	}
	return nil, fmt.Errorf("alphablend: no usable backend: %w", errors.Join(errs...))
}

// Composite blends fg over bg in place with the fastest suitable backend.
// The background is scanned once to decide whether the opaque paths apply.
func Composite(bg, fg *Image) error {
	if err := Validate(bg, fg); err != nil {
		return err
	}
	b, err := Select(bg.Opaque())
	if err != nil {
		return err
	}
	if c, ok := b.(Closer); ok {
		defer c.Close()
	}
	_, err = b.Composite(bg, fg)
	return err
}
