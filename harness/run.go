package harness

import (
	"image"
	"time"

	"github.com/gogpu/alphablend"
)

// Trial is the outcome of one backend invocation.
type Trial struct {
	Elapsed time.Duration
	Sample  alphablend.Pixel
	Output  *alphablend.Image
}

// RunBackend composites fg onto a clone of bg with b and samples the output
// at the given point. bg itself is never modified.
func RunBackend(b alphablend.Backend, bg, fg *alphablend.Image, at image.Point) (Trial, error) {
	if err := alphablend.Validate(bg, fg); err != nil {
		return Trial{}, err
	}
	out := bg.Clone()
	elapsed, err := b.Composite(out, fg)
	if err != nil {
		return Trial{}, err
	}
	return Trial{
		Elapsed: elapsed,
		Sample:  out.PixelAt(at.X, at.Y),
		Output:  out,
	}, nil
}
