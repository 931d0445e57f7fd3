package harness

import (
	"image"

	"github.com/gogpu/alphablend"
)

// Defaults used by New.
var (
	DefaultWidth      = 1920
	DefaultHeight     = 1200
	DefaultBackground = alphablend.Pixel{R: 101, G: 102, B: 103, A: 255}
	DefaultForeground = alphablend.Pixel{R: 10, G: 217, B: 100, A: 200}
)

// DefaultTolerance is the largest per-channel deviation from the float
// reference accepted for any backend.
const DefaultTolerance = 2

type config struct {
	width, height int
	bgFill        Fill
	fgFill        Fill
	bg, fg        *alphablend.Image
	clock         alphablend.Clock
	sample        image.Point
	tolerance     uint8
	kinds         []alphablend.Kind
	sink          alphablend.Sink
}

func defaultConfig() config {
	return config{
		width:     DefaultWidth,
		height:    DefaultHeight,
		bgFill:    Constant(DefaultBackground),
		fgFill:    Constant(DefaultForeground),
		clock:     alphablend.SystemClock{},
		tolerance: DefaultTolerance,
		kinds:     alphablend.Kinds(),
	}
}

// Option configures a Harness.
type Option func(*config)

// WithSize sets the size of the generated images.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithFills sets how the background and foreground are filled.
func WithFills(bg, fg Fill) Option {
	return func(c *config) {
		if bg != nil {
			c.bgFill = bg
		}
		if fg != nil {
			c.fgFill = fg
		}
	}
}

// WithSeed fills both images with pseudo-random pixels derived from seed.
// The background stays opaque so every backend applies.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.bgFill = RandomFill(seed).Opaque()
		c.fgFill = RandomFill(seed + 1)
	}
}

// WithImages uses the given images instead of generating them. Their sizes
// must match.
func WithImages(bg, fg *alphablend.Image) Option {
	return func(c *config) {
		c.bg, c.fg = bg, fg
	}
}

// WithClock sets the time source passed to every backend.
func WithClock(clock alphablend.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithSample sets the output pixel reported for each backend.
func WithSample(x, y int) Option {
	return func(c *config) {
		c.sample = image.Pt(x, y)
	}
}

// WithTolerance sets the accepted per-channel deviation from the float
// reference.
func WithTolerance(n uint8) Option {
	return func(c *config) {
		c.tolerance = n
	}
}

// WithBackends restricts the run to the given kinds, in order.
func WithBackends(kinds ...alphablend.Kind) Option {
	return func(c *config) {
		if len(kinds) > 0 {
			c.kinds = append([]alphablend.Kind(nil), kinds...)
		}
	}
}

// WithSink saves the float reference output after the run.
func WithSink(s alphablend.Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}
