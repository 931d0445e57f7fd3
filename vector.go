package alphablend

import (
	"fmt"
	"time"

	"github.com/gogpu/alphablend/internal/simd"
)

// vectorBackend runs the opaque-background kernel on register batches.
type vectorBackend struct {
	kind  Kind
	width simd.Width
	clock Clock
}

func newVectorNarrow(cfg Config) (Backend, error) {
	c := HostCapabilities()
	if !(c.SSE2 && c.SSSE3) && !c.ASIMD {
		return nil, fmt.Errorf("%w: %s needs %s+%s or %s", ErrUnsupported, KindVectorNarrow, ExtSSE2, ExtSSSE3, ExtASIMD)
	}
	return &vectorBackend{kind: KindVectorNarrow, width: simd.Narrow, clock: cfg.Clock}, nil
}

func newVectorWide(cfg Config) (Backend, error) {
	c := HostCapabilities()
	if !c.AVX || !c.AVX2 {
		return nil, fmt.Errorf("%w: %s needs %s+%s", ErrUnsupported, KindVectorWide, ExtAVX, ExtAVX2)
	}
	return &vectorBackend{kind: KindVectorWide, width: simd.Wide, clock: cfg.Clock}, nil
}

func (b *vectorBackend) Kind() Kind { return b.kind }

func (b *vectorBackend) Composite(bg, fg *Image) (time.Duration, error) {
	if err := Validate(bg, fg); err != nil {
		return 0, err
	}

	var split simd.Split
	elapsed := measure(b.clock, func() {
		split = simd.Composite(bg.Data(), fg.Data(), b.width)
	})

	Logger().Debug("alphablend: vector composite",
		"backend", b.kind,
		"prefix", split.Prefix,
		"batched", split.Batched,
		"suffix", split.Suffix)
	return elapsed, nil
}
