package alphablend

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// Sink persists a composited image.
type Sink interface {
	Save(img *Image) error
}

// FileSink writes images to Path. The format follows the extension
// (.png, .jpg, .gif, .tif, .bmp).
type FileSink struct {
	Path string
}

// Save writes img to the sink's path.
func (s FileSink) Save(img *Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := imaging.Save(img.NRGBA(), s.Path); err != nil {
		return fmt.Errorf("alphablend: save %s: %w", s.Path, err)
	}
	return nil
}

// BMPSink encodes images as BMP to W.
type BMPSink struct {
	W io.Writer
}

// Save encodes img to the writer.
func (s BMPSink) Save(img *Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := bmp.Encode(s.W, img.NRGBA()); err != nil {
		return fmt.Errorf("alphablend: encode bmp: %w", err)
	}
	return nil
}

// LoadImage decodes the image at path. When width and height are positive
// and differ from the decoded size, the image is resampled to them with a
// Lanczos filter so it can be paired with another image.
func LoadImage(path string, width, height int) (*Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("alphablend: open %s: %w", path, err)
	}
	b := src.Bounds()
	if width > 0 && height > 0 && (b.Dx() != width || b.Dy() != height) {
		return FromImage(imaging.Resize(src, width, height, imaging.Lanczos)), nil
	}
	return FromImage(src), nil
}
