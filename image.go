package alphablend

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image is a width x height grid of RGBA pixels stored row-major, 4 bytes
// per pixel. Dimensions are fixed at creation.
type Image struct {
	width  int
	height int
	data   []uint8
}

// NewImage creates a fully transparent image. Negative dimensions are
// treated as zero.
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Pixels returns width*height.
func (m *Image) Pixels() int {
	return m.width * m.height
}

// Data returns the raw interleaved RGBA bytes. Writes are visible to the
// image.
func (m *Image) Data() []uint8 {
	return m.data
}

// SameSize reports whether m and o have identical dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// Fill sets every pixel to p.
func (m *Image) Fill(p Pixel) {
	for i := 0; i < len(m.data); i += 4 {
		m.data[i+0] = p.R
		m.data[i+1] = p.G
		m.data[i+2] = p.B
		m.data[i+3] = p.A
	}
}

// PixelAt returns the pixel at (x, y), or Transparent outside the image.
func (m *Image) PixelAt(x, y int) Pixel {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Transparent
	}
	i := (y*m.width + x) * 4
	return Pixel{R: m.data[i+0], G: m.data[i+1], B: m.data[i+2], A: m.data[i+3]}
}

// SetPixel sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (m *Image) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * 4
	m.data[i+0] = p.R
	m.data[i+1] = p.G
	m.data[i+2] = p.B
	m.data[i+3] = p.A
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	c := &Image{width: m.width, height: m.height, data: make([]uint8, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Opaque reports whether every pixel has alpha 255.
func (m *Image) Opaque() bool {
	for i := 3; i < len(m.data); i += 4 {
		if m.data[i] != 255 {
			return false
		}
	}
	return true
}

// NRGBA returns an image.NRGBA view sharing m's pixel memory.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.data,
		Stride: m.width * 4,
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.PixelAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// FromImage converts any image into the RGBA layout used by the backends.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := NewImage(b.Dx(), b.Dy())
	draw.Draw(m.NRGBA(), m.Bounds(), src, b.Min, draw.Src)
	return m
}
