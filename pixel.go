package alphablend

import (
	"fmt"
	"image/color"

	"github.com/gogpu/alphablend/internal/blend"
)

// Pixel is one RGBA pixel with straight (non-premultiplied) 8-bit channels.
type Pixel struct {
	R, G, B, A uint8
}

// Common pixels.
var (
	Transparent = Pixel{}
	Black       = Pixel{A: 255}
	White       = Pixel{R: 255, G: 255, B: 255, A: 255}
)

// PixelFromColor converts any color to a Pixel.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA) //nolint:forcetypeassert // NRGBAModel always returns NRGBA
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA returns the pixel as a color.NRGBA.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// Opaque reports whether the alpha channel is 255.
func (p Pixel) Opaque() bool {
	return p.A == 255
}

// Deviation returns the largest absolute per-channel difference.
func (p Pixel) Deviation(q Pixel) uint8 {
	a, b := p.array(), q.array()
	var worst uint8
	for i := range a {
		d := a[i] - b[i]
		if b[i] > a[i] {
			d = b[i] - a[i]
		}
		worst = max(worst, d)
	}
	return worst
}

// String returns the pixel as "(r,g,b,a)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}

func (p Pixel) array() [4]uint8 {
	return [4]uint8{p.R, p.G, p.B, p.A}
}

func pixelOf(a [4]uint8) Pixel {
	return Pixel{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// SourceOver composites one foreground pixel over one background pixel with
// the float reference formula. When both are fully transparent it returns bg
// together with ErrDivisionDegenerate.
func SourceOver(bg, fg Pixel) (Pixel, error) {
	out, ok := blend.SourceOverFloat(bg.array(), fg.array())
	if !ok {
		return bg, ErrDivisionDegenerate
	}
	return pixelOf(out), nil
}
