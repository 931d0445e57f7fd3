package simd

import "github.com/gogpu/alphablend/internal/wide"

// z zeroes a shuffle output byte.
const z = wide.ShuffleZero

// Shuffle controls for one 128-bit register holding two interleaved RGBA
// pixels in its low 8 bytes:
//
//	byte:  0  1  2  3  4  5  6  7  8 .. 15
//	       R0 G0 B0 A0 R1 G1 B1 A1 0  .. 0
//
// Arithmetic runs in 16-bit lanes (8-bit x 8-bit products need 16 bits), so
// the color bytes are widened into lanes 0-5 and lanes 6-7 stay zero:
//
//	lane:  0  1  2  3  4  5  6 7
//	       R0 G0 B0 R1 G1 B1 0 0
//
// The 256-bit register repeats this layout in each 128-bit half because the
// byte shuffle cannot cross halves: its tables are built half by half from
// the 128-bit ones, see joinHalves.
var (
	// widenRGB moves R, G, B of both pixels into the low byte of lanes 0-5.
	widenRGB = wide.U8x16{
		0, z, 1, z, 2, z,
		4, z, 5, z, 6, z,
		z, z, z, z,
	}

	// broadcastAlpha replicates each pixel's alpha into the lanes of its
	// three color channels.
	broadcastAlpha = wide.U8x16{
		3, z, 3, z, 3, z,
		7, z, 7, z, 7, z,
		z, z, z, z,
	}

	// narrowHigh takes the high byte of lanes 0-5, which is the lane value
	// shifted right by 8, and re-interleaves it as RGBA with a zero alpha
	// byte for the mask to fill.
	narrowHigh = wide.U8x16{
		1, 3, 5, z,
		7, 9, 11, z,
		z, z, z, z,
		z, z, z, z,
	}

	// opaqueAlpha sets the alpha byte of both output pixels.
	opaqueAlpha = wide.U8x16{
		0, 0, 0, 0xFF,
		0, 0, 0, 0xFF,
	}

	// max255 is 255 in every 16-bit lane, as bytes.
	max255 = wide.SplatU16x8(255).Bytes()
)

// 256-bit tables: two copies of the 128-bit ones, one per half.
var (
	widenRGB2       = joinHalves(widenRGB)
	broadcastAlpha2 = joinHalves(broadcastAlpha)
	narrowHigh2     = joinHalves(narrowHigh)
	opaqueAlpha2    = joinHalves(opaqueAlpha)
	max255x2        = joinHalves(max255)
)

// joinHalves builds a 256-bit control whose halves both apply t. Indices stay
// relative to the half, which is how VPSHUFB reads them.
func joinHalves(t wide.U8x16) wide.U8x32 {
	return wide.JoinU8x32(t, t)
}
