// Package simd implements the opaque-background compositing kernel on
// batches of pixels held in (modelled) vector registers.
//
// Two register widths are provided: Narrow handles 2 pixels per pass in a
// 128-bit register (SSSE3 shape), Wide handles 4 pixels per pass in a 256-bit
// register (AVX2 shape). The batch loop only covers the aligned middle of the
// buffers; leading pixels before the first 8-byte boundary of dst and the
// trailing pixels that do not fill a batch run through the scalar kernel.
//
// The kernels do not query the CPU. Callers gate them behind the capability
// table and never reach them when the extension is missing.
package simd

import (
	"encoding/binary"
	"unsafe"

	"github.com/gogpu/alphablend/internal/blend"
)

// Width selects the register width of the batch loop.
type Width int

const (
	// Narrow is the 128-bit register: 2 pixels per pass.
	Narrow Width = iota
	// Wide is the 256-bit register: 4 pixels per pass.
	Wide
)

// String returns the register width name.
func (w Width) String() string {
	switch w {
	case Narrow:
		return "128-bit"
	case Wide:
		return "256-bit"
	default:
		return "unknown"
	}
}

// BatchPixels returns the number of pixels processed per register pass.
func (w Width) BatchPixels() int {
	if w == Wide {
		return 4
	}
	return 2
}

// Split describes how a call divided the buffer, in pixels.
type Split struct {
	Prefix  int // scalar pixels before the aligned middle
	Batched int // pixels covered by the batch loop
	Suffix  int // scalar pixels after the aligned middle
}

// Composite blends src over dst in place assuming every dst alpha is 255.
// Output alpha is always 255. Both slices are cut to the common whole-pixel
// length.
func Composite(dst, src []byte, w Width) Split {
	n := min(len(dst), len(src)) &^ 3
	dst, src = dst[:n:n], src[:n:n]
	pixels := n / 4

	split := plan(dst, pixels, w)

	head := split.Prefix * 4
	mid := head + split.Batched*4

	blend.OpaqueChunks(dst[:head], src[:head])
	switch w {
	case Wide:
		batchWide(dst[head:mid], src[head:mid])
	default:
		batchNarrow(dst[head:mid], src[head:mid])
	}
	blend.OpaqueChunks(dst[mid:], src[mid:])

	return split
}

// plan computes the prefix/batch/suffix split for dst.
func plan(dst []byte, pixels int, w Width) Split {
	if pixels == 0 {
		return Split{}
	}
	prefix := alignPrefix(dst)
	if prefix > pixels {
		prefix = pixels
	}
	per := w.BatchPixels()
	batched := (pixels - prefix) / per * per
	return Split{
		Prefix:  prefix,
		Batched: batched,
		Suffix:  pixels - prefix - batched,
	}
}

// alignPrefix returns the number of whole pixels before dst reaches an 8-byte
// boundary. A buffer that is not even pixel-aligned gets no prefix: the word
// loads below do not require alignment, only the batching benefits from it.
func alignPrefix(dst []byte) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(dst))) //nolint:gosec // address inspected, never dereferenced
	gap := int((8 - addr%8) % 8)
	if gap%4 != 0 {
		return 0
	}
	return gap / 4
}

func batchNarrow(dst, src []byte) {
	for len(dst) >= 8 && len(src) >= 8 {
		d := binary.LittleEndian.Uint64(dst)
		s := binary.LittleEndian.Uint64(src)
		binary.LittleEndian.PutUint64(dst, blendNarrow(d, s))
		dst, src = dst[8:], src[8:]
	}
}

func batchWide(dst, src []byte) {
	for len(dst) >= 16 && len(src) >= 16 {
		lo, hi := blendWide(
			binary.LittleEndian.Uint64(dst[0:8]),
			binary.LittleEndian.Uint64(dst[8:16]),
			binary.LittleEndian.Uint64(src[0:8]),
			binary.LittleEndian.Uint64(src[8:16]),
		)
		binary.LittleEndian.PutUint64(dst[0:8], lo)
		binary.LittleEndian.PutUint64(dst[8:16], hi)
		dst, src = dst[16:], src[16:]
	}
}
