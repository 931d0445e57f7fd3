package harness

import (
	"errors"
	"fmt"

	"github.com/gogpu/alphablend"
)

// Harness runs every configured backend over the same pair of images.
type Harness struct {
	cfg    config
	bg, fg *alphablend.Image
}

// New creates a harness and its images.
func New(opts ...Option) *Harness {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &Harness{cfg: cfg, bg: cfg.bg, fg: cfg.fg}
	if h.bg == nil || h.fg == nil {
		h.bg, h.fg = GenerateImages(cfg.width, cfg.height, cfg.bgFill, cfg.fgFill)
	}
	return h
}

// Images returns the canonical background and foreground. They must not be
// modified while Run is in progress.
func (h *Harness) Images() (bg, fg *alphablend.Image) {
	return h.bg, h.fg
}

// Run benchmarks every configured backend and validates its output against
// the float reference.
//
// Only precondition failures (mismatched or missing images, a failing
// reference) abort the run. Per-backend failures are recorded in the
// report.
func (h *Harness) Run() (*Report, error) {
	if err := alphablend.Validate(h.bg, h.fg); err != nil {
		return nil, err
	}
	log := alphablend.Logger()

	ref, err := h.newBackend(alphablend.KindFloatReference)
	if err != nil {
		return nil, fmt.Errorf("harness: reference backend: %w", err)
	}
	oracle, err := RunBackend(ref, h.bg, h.fg, h.cfg.sample)
	if err != nil {
		return nil, fmt.Errorf("harness: reference backend: %w", err)
	}

	report := &Report{
		Width:     h.bg.Width(),
		Height:    h.bg.Height(),
		Sample:    h.cfg.sample,
		Tolerance: h.cfg.tolerance,
		Reference: oracle.Sample,
	}

	opaque := h.bg.Opaque()
	for _, kind := range h.cfg.kinds {
		res := h.runOne(kind, opaque, oracle)
		report.Results = append(report.Results, res)

		switch {
		case res.Skipped:
			log.Info("harness: skipped", "backend", kind, "reason", "background not opaque")
		case res.Err != nil:
			log.Warn("harness: trial failed", "backend", kind, "err", res.Err)
		default:
			log.Info("harness: trial",
				"backend", kind, "ran", res.Ran,
				"elapsed", res.Elapsed, "sample", res.Sample,
				"max_deviation", res.MaxDeviation, "mismatches", res.Mismatches)
		}
	}

	if h.cfg.sink != nil {
		if err := h.cfg.sink.Save(oracle.Output); err != nil {
			return report, fmt.Errorf("harness: save: %w", err)
		}
	}
	return report, nil
}

func (h *Harness) runOne(kind alphablend.Kind, opaque bool, oracle Trial) Result {
	res := Result{Kind: kind, Ran: kind, Pixels: h.bg.Pixels()}
	if kind.AssumesOpaqueBackground() && !opaque {
		res.Skipped = true
		return res
	}

	b, err := h.newBackend(kind)
	if errors.Is(err, alphablend.ErrUnsupported) {
		res.Unsupported = true
		res.Ran = kind.ScalarFallback()
		alphablend.Logger().Warn("harness: backend unsupported, falling back",
			"backend", kind, "fallback", res.Ran, "err", err)
		if res.Ran == kind {
			res.Err = err
			return res
		}
		b, err = h.newBackend(res.Ran)
	}
	if err != nil {
		res.Err = err
		return res
	}
	if c, ok := b.(alphablend.Closer); ok {
		defer c.Close()
	}

	trial, err := RunBackend(b, h.bg, h.fg, h.cfg.sample)
	if err != nil {
		res.Err = err
		return res
	}
	res.Elapsed = trial.Elapsed
	res.Sample = trial.Sample
	var slack func(alpha uint8) int
	if !opaque && res.Ran.TranslucentSlack(1) > 0 {
		slack = res.Ran.TranslucentSlack
		res.Relaxed = true
	}
	res.MaxDeviation, res.Mismatches = compare(trial.Output, oracle.Output, h.cfg.tolerance, slack)
	return res
}

func (h *Harness) newBackend(kind alphablend.Kind) (alphablend.Backend, error) {
	return alphablend.New(kind, alphablend.WithClock(h.cfg.clock))
}

// compare returns the largest per-channel deviation of got from want and
// the number of pixels deviating by more than tolerance. A non-nil slack
// widens the bound per pixel by slack(alpha of got).
func compare(got, want *alphablend.Image, tolerance uint8, slack func(alpha uint8) int) (worst uint8, mismatches int) {
	g, w := got.Data(), want.Data()
	for i := 0; i+4 <= len(w) && i+4 <= len(g); i += 4 {
		var d uint8
		for c := i; c < i+4; c++ {
			if g[c] > w[c] {
				d = max(d, g[c]-w[c])
			} else {
				d = max(d, w[c]-g[c])
			}
		}
		worst = max(worst, d)
		bound := int(tolerance)
		if slack != nil {
			bound += slack(g[i+3])
		}
		if int(d) > bound {
			mismatches++
		}
	}
	return worst, mismatches
}
