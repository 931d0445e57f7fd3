// Package wide models SIMD registers as fixed-size Go arrays for batch pixel
// processing.
//
// Each type mirrors one register view used by the vector compositing kernels:
//
//	U8x16  - 128-bit register as 16 bytes (SSSE3 byte shuffles, saturating math)
//	U16x8  - 128-bit register as 8 uint16 lanes (widened channel arithmetic)
//	U8x32  - 256-bit register as 32 bytes, two independent 128-bit halves
//	U16x16 - 256-bit register as 16 uint16 lanes
//
// Operations follow the instruction semantics they stand in for, including
// the awkward parts: a byte shuffle zeroes every lane whose control byte has
// the high bit set, and the 256-bit shuffle cannot move bytes across its two
// 128-bit halves. Reinterpretation between byte and uint16 views is
// little-endian, exactly like a register bit cast.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify batch performance gains
//
// # Usage Example
//
//	// Widen two RGBA pixels into 16-bit lanes
//	px := wide.LoadU8x16Word(binary.LittleEndian.Uint64(pixels))
//	lanes := px.Shuffle(widenRGB).U16()
//	lanes = lanes.Mul(alpha)
package wide
