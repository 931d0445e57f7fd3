package simd

import "github.com/gogpu/alphablend/internal/wide"

// blendNarrow composites two foreground pixels over two opaque background
// pixels in one 128-bit register pass. dst and src are the little-endian
// words holding the pixel pairs.
func blendNarrow(dst, src uint64) uint64 {
	s := wide.LoadU8x16Word(src)
	d := wide.LoadU8x16Word(dst)

	srcRGB := s.Shuffle(widenRGB).U16()
	dstRGB := d.Shuffle(widenRGB).U16()
	alpha := s.Shuffle(broadcastAlpha)
	notAlpha := max255.SubSat(alpha)

	// src*a + dst*(255-a) <= 65025, no 16-bit overflow.
	sum := srcRGB.Mul(alpha.U16()).Add(dstRGB.Mul(notAlpha.U16()))

	return sum.Bytes().Shuffle(narrowHigh).Or(opaqueAlpha).Word()
}
