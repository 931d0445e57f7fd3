package simd

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/gogpu/alphablend/internal/blend"
)

func opaqueBuffers(seed int64, pixels int) (dst, src []byte) {
	rng := rand.New(rand.NewSource(seed))
	dst = make([]byte, pixels*4)
	src = make([]byte, pixels*4)
	rng.Read(dst)
	rng.Read(src)
	for i := 3; i < len(dst); i += 4 {
		dst[i] = 255
	}
	return dst, src
}

func TestBlendNarrowMatchesScalar(t *testing.T) {
	dst, src := opaqueBuffers(1, 2)
	want := bytes.Clone(dst)
	blend.Opaque(want, src)

	got := bytes.Clone(dst)
	batchNarrow(got, src)

	if !bytes.Equal(got, want) {
		t.Errorf("blendNarrow = %v, want %v", got, want)
	}
}

func TestBlendWideMatchesScalar(t *testing.T) {
	dst, src := opaqueBuffers(2, 4)
	want := bytes.Clone(dst)
	blend.Opaque(want, src)

	got := bytes.Clone(dst)
	batchWide(got, src)

	if !bytes.Equal(got, want) {
		t.Errorf("blendWide = %v, want %v", got, want)
	}
}

func TestBlendNarrowExtremes(t *testing.T) {
	tests := []struct {
		name     string
		dst, src [4]uint8
		want     [4]uint8
	}{
		{"transparent fg", [4]uint8{10, 20, 30, 255}, [4]uint8{200, 200, 200, 0}, [4]uint8{9, 19, 29, 255}},
		{"opaque fg", [4]uint8{10, 20, 30, 255}, [4]uint8{200, 100, 50, 255}, [4]uint8{199, 99, 49, 255}},
		{"opaque fg over blue", [4]uint8{0, 0, 255, 255}, [4]uint8{30, 192, 0, 255}, [4]uint8{29, 191, 0, 255}},
		{"translucent fg", [4]uint8{101, 102, 103, 255}, [4]uint8{10, 217, 100, 200}, [4]uint8{29, 191, 100, 255}},
		{"half", [4]uint8{0, 0, 255, 255}, [4]uint8{60, 255, 0, 128}, [4]uint8{30, 127, 126, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := append(tt.dst[:], tt.dst[:]...)
			src := append(tt.src[:], tt.src[:]...)
			batchNarrow(dst, src)
			for p := 0; p < 2; p++ {
				if got := [4]uint8(dst[p*4 : p*4+4]); got != tt.want {
					t.Errorf("pixel %d = %v, want %v", p, got, tt.want)
				}
			}
		})
	}
}

func TestWideTablesRepeatPerHalf(t *testing.T) {
	for name, pair := range map[string]struct {
		t128 [16]uint8
		t256 [32]uint8
	}{
		"widenRGB":       {widenRGB, widenRGB2},
		"broadcastAlpha": {broadcastAlpha, broadcastAlpha2},
		"narrowHigh":     {narrowHigh, narrowHigh2},
		"opaqueAlpha":    {opaqueAlpha, opaqueAlpha2},
	} {
		lo, hi := [16]uint8(pair.t256[:16]), [16]uint8(pair.t256[16:])
		if lo != pair.t128 || hi != pair.t128 {
			t.Errorf("%s: halves %v / %v, want both %v", name, lo, hi, pair.t128)
		}
	}
}

func TestCompositeMatchesOpaque(t *testing.T) {
	for _, w := range []Width{Narrow, Wide} {
		for _, pixels := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 63, 64, 65, 1001} {
			t.Run(fmt.Sprintf("%s/%d", w, pixels), func(t *testing.T) {
				dst, src := opaqueBuffers(int64(pixels), pixels)
				want := bytes.Clone(dst)
				blend.Opaque(want, src)

				split := Composite(dst, src, w)

				if !bytes.Equal(dst, want) {
					t.Fatal("batch result differs from scalar kernel")
				}
				if total := split.Prefix + split.Batched + split.Suffix; total != pixels {
					t.Errorf("split covers %d pixels, want %d", total, pixels)
				}
				if split.Batched%w.BatchPixels() != 0 {
					t.Errorf("batched %d not a multiple of %d", split.Batched, w.BatchPixels())
				}
				if split.Suffix >= w.BatchPixels() {
					t.Errorf("suffix %d should be shorter than one batch", split.Suffix)
				}
			})
		}
	}
}

func TestCompositeUnalignedStart(t *testing.T) {
	// Start one pixel into the buffer so the prefix loop runs.
	for _, w := range []Width{Narrow, Wide} {
		dst, src := opaqueBuffers(9, 34)
		want := bytes.Clone(dst)
		blend.Opaque(want[4:], src[4:])

		got := bytes.Clone(dst)
		Composite(got[4:], src[4:], w)

		if !bytes.Equal(got, want) {
			t.Errorf("%s: offset composite differs from scalar kernel", w)
		}
	}
}

func TestCompositeForcesOpaqueAlpha(t *testing.T) {
	dst, src := opaqueBuffers(3, 37)
	Composite(dst, src, Wide)
	for i := 3; i < len(dst); i += 4 {
		if dst[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, dst[i])
		}
	}
}

func TestCompositeIgnoresPartialPixel(t *testing.T) {
	dst, src := opaqueBuffers(4, 3)
	dst = append(dst, 7, 7)
	src = append(src, 9, 9)

	Composite(dst, src, Narrow)

	if dst[12] != 7 || dst[13] != 7 {
		t.Errorf("trailing bytes = %v, want untouched", dst[12:])
	}
}

func TestPlan(t *testing.T) {
	buf := make([]byte, 64)
	base := alignPrefix(buf)
	if base != 0 && base != 1 {
		t.Fatalf("alignPrefix = %d, want 0 or 1", base)
	}
	if got := alignPrefix(buf[1:]); got != 0 {
		t.Errorf("alignPrefix(non-pixel aligned) = %d, want 0", got)
	}

	s := plan(buf, 0, Wide)
	if s != (Split{}) {
		t.Errorf("plan(empty) = %+v, want zero", s)
	}
}

func TestWidthString(t *testing.T) {
	if Narrow.String() != "128-bit" || Wide.String() != "256-bit" || Width(9).String() != "unknown" {
		t.Error("unexpected Width strings")
	}
}

func BenchmarkComposite(b *testing.B) {
	for _, w := range []Width{Narrow, Wide} {
		b.Run(w.String(), func(b *testing.B) {
			dst, src := opaqueBuffers(5, 1920*1080)
			b.SetBytes(int64(len(dst)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Composite(dst, src, w)
			}
		})
	}
}
