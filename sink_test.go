package alphablend

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestFileSinkAndLoadImage(t *testing.T) {
	src := filled(6, 4, Pixel{29, 192, 100, 255})
	path := filepath.Join(t.TempDir(), "out.png")

	if err := (FileSink{Path: path}).Save(src); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := LoadImage(path, 0, 0)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if !got.SameSize(src) || !bytes.Equal(got.Data(), src.Data()) {
		t.Errorf("round trip through png changed the image")
	}

	resized, err := LoadImage(path, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if resized.Width() != 3 || resized.Height() != 2 {
		t.Errorf("resized = %dx%d, want 3x2", resized.Width(), resized.Height())
	}
	if d := resized.PixelAt(1, 1).Deviation(Pixel{29, 192, 100, 255}); d > 1 {
		t.Errorf("resampled constant image = %v", resized.PixelAt(1, 1))
	}
}

func TestFileSinkUnknownExtension(t *testing.T) {
	err := (FileSink{Path: filepath.Join(t.TempDir(), "out.xyz")}).Save(NewImage(1, 1))
	if err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestBMPSink(t *testing.T) {
	src := filled(2, 2, Pixel{1, 2, 3, 255})
	var buf bytes.Buffer
	if err := (BMPSink{W: &buf}).Save(src); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if got := PixelFromColor(img.At(1, 1)); got != (Pixel{1, 2, 3, 255}) {
		t.Errorf("decoded pixel = %v", got)
	}
}

func TestSinkNilImage(t *testing.T) {
	if err := (BMPSink{W: &bytes.Buffer{}}).Save(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("error = %v, want ErrNilImage", err)
	}
	if err := (FileSink{Path: "x.png"}).Save(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("error = %v, want ErrNilImage", err)
	}
}
