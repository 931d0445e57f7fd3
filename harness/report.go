package harness

import (
	"image"
	"time"

	"github.com/gogpu/alphablend"
)

// Result describes one backend entry of a run.
type Result struct {
	// Kind is the backend requested.
	Kind alphablend.Kind

	// Ran is the backend that actually composited. It differs from Kind
	// when Kind was unsupported and its scalar fallback ran instead.
	Ran alphablend.Kind

	// Unsupported is set when the host lacks the capability Kind needs.
	Unsupported bool

	// Skipped is set when Kind requires an opaque background and the
	// background is not opaque. Nothing ran.
	Skipped bool

	Elapsed time.Duration
	Sample  alphablend.Pixel
	Pixels  int

	// MaxDeviation is the largest per-channel difference from the float
	// reference; Mismatches counts pixels beyond the tolerance.
	MaxDeviation uint8
	Mismatches   int

	// Relaxed is set when the tolerance was widened per pixel by the
	// backend's translucent slack (alphablend.Kind.TranslucentSlack).
	Relaxed bool

	// Err is set when the trial failed, e.g. on a device transfer error.
	Err error
}

// FellBack reports whether a fallback backend ran in place of Kind.
func (r Result) FellBack() bool {
	return r.Ran != r.Kind
}

// OK reports whether the trial ran and agreed with the reference.
func (r Result) OK() bool {
	return r.Err == nil && !r.Skipped && r.Mismatches == 0
}

// PixelsPerSecond returns the composite throughput, or 0 when nothing was
// timed.
func (r Result) PixelsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Pixels) / r.Elapsed.Seconds()
}

// Report is the outcome of a Harness run.
type Report struct {
	Width, Height int
	Sample        image.Point
	Tolerance     uint8

	// Reference is the float reference output at Sample.
	Reference alphablend.Pixel

	Results []Result
}

// Failures returns the results that failed or disagreed with the reference.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Skipped {
			continue
		}
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}
