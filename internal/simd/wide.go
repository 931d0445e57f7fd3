package simd

import "github.com/gogpu/alphablend/internal/wide"

// blendWide composites four foreground pixels over four opaque background
// pixels in one 256-bit register pass. Pixels 0-1 travel in the low half and
// pixels 2-3 in the high half, each half laid out like the 128-bit register.
func blendWide(dstLo, dstHi, srcLo, srcHi uint64) (lo, hi uint64) {
	s := wide.LoadU8x32(srcLo, srcHi)
	d := wide.LoadU8x32(dstLo, dstHi)

	srcRGB := s.Shuffle(widenRGB2).U16()
	dstRGB := d.Shuffle(widenRGB2).U16()
	alpha := s.Shuffle(broadcastAlpha2)
	notAlpha := max255x2.SubSat(alpha)

	sum := srcRGB.Mul(alpha.U16()).Add(dstRGB.Mul(notAlpha.U16()))

	return sum.Bytes().Shuffle(narrowHigh2).Or(opaqueAlpha2).Words()
}
