package harness

import (
	"fmt"
	"math/rand"

	"github.com/gogpu/alphablend"
)

// Fill initializes the pixels of a generated image.
type Fill interface {
	Apply(img *alphablend.Image)
	String() string
}

// Constant fills every pixel with p.
func Constant(p alphablend.Pixel) Fill {
	return constantFill(p)
}

type constantFill alphablend.Pixel

func (f constantFill) Apply(img *alphablend.Image) { img.Fill(alphablend.Pixel(f)) }
func (f constantFill) String() string              { return alphablend.Pixel(f).String() }

// RandomPixels fills an image with pseudo-random bytes from a fixed seed.
type RandomPixels struct {
	seed   int64
	opaque bool
}

// RandomFill returns a reproducible pseudo-random fill.
func RandomFill(seed int64) RandomPixels {
	return RandomPixels{seed: seed}
}

// Opaque returns a copy of the fill that forces every alpha to 255, as the
// opaque-background backends require.
func (f RandomPixels) Opaque() RandomPixels {
	f.opaque = true
	return f
}

// Apply fills img.
func (f RandomPixels) Apply(img *alphablend.Image) {
	data := img.Data()
	rng := rand.New(rand.NewSource(f.seed)) //nolint:gosec // reproducible test data
	rng.Read(data)
	if f.opaque {
		for i := 3; i < len(data); i += 4 {
			data[i] = 255
		}
	}
}

func (f RandomPixels) String() string {
	if f.opaque {
		return fmt.Sprintf("random(%d, opaque)", f.seed)
	}
	return fmt.Sprintf("random(%d)", f.seed)
}

// GenerateImages creates a background and a foreground of the given size.
func GenerateImages(width, height int, bgFill, fgFill Fill) (bg, fg *alphablend.Image) {
	bg = alphablend.NewImage(width, height)
	fg = alphablend.NewImage(width, height)
	bgFill.Apply(bg)
	fgFill.Apply(fg)
	return bg, fg
}
