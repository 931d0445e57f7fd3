package alphablend

import (
	"time"

	"github.com/gogpu/alphablend/internal/blend"
)

// softwareBackend runs one of the scalar kernels.
type softwareBackend struct {
	kind  Kind
	clock Clock
	table *blend.DivTable
}

func newSoftware(kind Kind) Factory {
	return func(cfg Config) (Backend, error) {
		b := &softwareBackend{kind: kind, clock: cfg.Clock}
		if kind == KindFixedPoint {
			// Built here so no timed call pays for it.
			b.table = blend.Table()
		}
		return b, nil
	}
}

func (b *softwareBackend) Kind() Kind { return b.kind }

func (b *softwareBackend) Composite(bg, fg *Image) (time.Duration, error) {
	if err := Validate(bg, fg); err != nil {
		return 0, err
	}

	dst, src := bg.Data(), fg.Data()
	var degenerate int
	elapsed := measure(b.clock, func() {
		switch b.kind {
		case KindFixedPoint:
			degenerate = blend.Fixed(dst, src, b.table)
		case KindOpaqueFast:
			blend.Opaque(dst, src)
		default:
			degenerate = blend.Float(dst, src)
		}
	})

	if degenerate > 0 {
		Logger().Debug("alphablend: degenerate pixels left unchanged",
			"backend", b.kind, "count", degenerate)
	}
	return elapsed, nil
}
