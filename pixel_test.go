package alphablend

import (
	"errors"
	"image/color"
	"testing"
)

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name   string
		bg, fg Pixel
		want   Pixel
	}{
		{"translucent over opaque", Pixel{101, 102, 103, 255}, Pixel{10, 217, 100, 200}, Pixel{29, 192, 100, 255}},
		{"transparent fg", Pixel{101, 102, 103, 255}, Pixel{10, 217, 100, 0}, Pixel{101, 102, 103, 255}},
		{"opaque fg", Pixel{101, 102, 103, 255}, Pixel{10, 217, 100, 255}, Pixel{10, 217, 100, 255}},
		{"over transparent bg", Pixel{0, 0, 0, 0}, Pixel{200, 100, 50, 128}, Pixel{200, 100, 50, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SourceOver(tt.bg, tt.fg)
			if err != nil {
				t.Fatalf("SourceOver() error = %v", err)
			}
			if d := got.Deviation(tt.want); d > 2 {
				t.Errorf("SourceOver() = %v, want %v (deviation %d)", got, tt.want, d)
			}
		})
	}
}

func TestSourceOverDegenerate(t *testing.T) {
	bg := Pixel{9, 8, 7, 0}
	got, err := SourceOver(bg, Pixel{1, 2, 3, 0})
	if !errors.Is(err, ErrDivisionDegenerate) {
		t.Fatalf("error = %v, want ErrDivisionDegenerate", err)
	}
	if got != bg {
		t.Errorf("result = %v, want background %v", got, bg)
	}
}

func TestPixelDeviation(t *testing.T) {
	tests := []struct {
		a, b Pixel
		want uint8
	}{
		{Pixel{}, Pixel{}, 0},
		{Pixel{10, 20, 30, 40}, Pixel{12, 19, 30, 40}, 2},
		{Pixel{0, 0, 0, 255}, Pixel{0, 0, 0, 0}, 255},
		{Pixel{5, 250, 0, 0}, Pixel{0, 255, 3, 0}, 5},
	}
	for _, tt := range tests {
		if got := tt.a.Deviation(tt.b); got != tt.want {
			t.Errorf("%v.Deviation(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Deviation(tt.a); got != tt.want {
			t.Errorf("deviation not symmetric for %v, %v", tt.a, tt.b)
		}
	}
}

func TestPixelFromColor(t *testing.T) {
	// Premultiplied half-transparent red.
	got := PixelFromColor(color.RGBA{R: 128, A: 128})
	if got != (Pixel{R: 255, A: 128}) {
		t.Errorf("PixelFromColor() = %v, want (255,0,0,128)", got)
	}
	if got := PixelFromColor(Pixel{1, 2, 3, 255}); got != (Pixel{1, 2, 3, 255}) {
		t.Errorf("round trip through color.Color = %v", got)
	}
}

func TestPixelString(t *testing.T) {
	if got := (Pixel{29, 192, 100, 255}).String(); got != "(29,192,100,255)" {
		t.Errorf("String() = %q", got)
	}
}
