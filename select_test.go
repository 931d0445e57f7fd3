package alphablend

import (
	"errors"
	"testing"
)

func TestSelect(t *testing.T) {
	if IsRegistered(KindDeviceOffload) {
		t.Skip("device backend registered by another import")
	}
	tests := []struct {
		name   string
		caps   Capabilities
		opaque bool
		want   Kind
	}{
		{"opaque avx2", allVectorCaps, true, KindVectorWide},
		{"opaque ssse3", Capabilities{SSE2: true, SSSE3: true}, true, KindVectorNarrow},
		{"opaque scalar", Capabilities{}, true, KindOpaqueFast},
		{"translucent", allVectorCaps, false, KindFloatReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer setCapabilities(tt.caps)()
			b, err := Select(tt.opaque)
			if err != nil {
				t.Fatal(err)
			}
			if b.Kind() != tt.want {
				t.Errorf("Select(%v) = %s, want %s", tt.opaque, b.Kind(), tt.want)
			}
		})
	}
}

func TestSelectNoBackend(t *testing.T) {
	defer setCapabilities(Capabilities{})()

	saved := make(map[Kind]Factory)
	registryMu.Lock()
	for k, f := range factories {
		saved[k] = f
		delete(factories, k)
	}
	registryMu.Unlock()
	defer func() {
		for k, f := range saved {
			Register(k, f)
		}
	}()

	_, err := Select(true)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("error = %v, want ErrUnsupported", err)
	}
}

func TestComposite(t *testing.T) {
	bg := filled(5, 3, Pixel{101, 102, 103, 255})
	fg := filled(5, 3, Pixel{10, 217, 100, 200})
	if err := Composite(bg, fg); err != nil {
		t.Fatal(err)
	}
	if d := bg.PixelAt(4, 2).Deviation(Pixel{29, 192, 100, 255}); d > 2 {
		t.Errorf("pixel = %v", bg.PixelAt(4, 2))
	}

	if err := Composite(bg, NewImage(1, 1)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestCompositeTranslucentStaysWithinTolerance(t *testing.T) {
	if IsRegistered(KindDeviceOffload) {
		t.Skip("device backend registered by another import")
	}
	bgPx, fgPx := Pixel{200, 100, 50, 20}, Pixel{10, 217, 100, 30}
	bg := filled(8, 8, bgPx)
	fg := filled(8, 8, fgPx)
	if err := Composite(bg, fg); err != nil {
		t.Fatal(err)
	}
	want, err := SourceOver(bgPx, fgPx)
	if err != nil {
		t.Fatal(err)
	}
	if d := bg.PixelAt(7, 7).Deviation(want); d > 2 {
		t.Errorf("pixel = %v, reference %v (deviation %d)", bg.PixelAt(7, 7), want, d)
	}
}
