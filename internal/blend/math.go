// Package blend implements the src-over compositing kernels shared by every
// CPU backend.
//
// All kernels operate in place on interleaved RGBA byte slices: dst holds the
// background and receives the result, src holds the foreground. Slices are
// expected to have equal length, a multiple of 4; callers validate dimensions
// before any pixel work starts.
//
// The div255 family avoids integer division by using shifts and additions.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Jim Blinn, "Three Wrongs Make a Right", IEEE CG&A 1995
package blend

// div255 divides x by 255 rounding to nearest, for x in [0, 65535].
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for every product of two bytes, which is all the kernels feed it.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b uint32) uint32 {
	return div255(a * b)
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x uint32) uint32 {
	return 255 - x
}

// clamp255 clamps x to the byte range.
func clamp255(x uint32) uint8 {
	if x > 255 {
		return 255
	}
	return uint8(x)
}
