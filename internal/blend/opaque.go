package blend

// Opaque composites src over dst assuming every dst alpha is 255. The
// precondition is not checked. Output alpha is forced to 255.
func Opaque(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		out := SourceOverOpaque(
			[4]uint8{dst[i], dst[i+1], dst[i+2], dst[i+3]},
			[4]uint8{src[i], src[i+1], src[i+2], src[i+3]},
		)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = out[0], out[1], out[2], out[3]
	}
}

// OpaqueChunks is the tight form of Opaque used as the scalar remainder loop
// of the vector kernels. Both slices are resliced to the same whole-pixel
// length once, so the loop body carries no further bounds checks. Output is
// identical to Opaque.
func OpaqueChunks(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	dst, src = dst[:n:n], src[:n:n]
	for len(dst) >= 4 && len(src) >= 4 {
		sa := uint32(src[3])
		invSa := 255 - sa
		dst[0] = uint8((uint32(src[0])*sa + invSa*uint32(dst[0])) >> 8) //nolint:gosec // max 65025>>8
		dst[1] = uint8((uint32(src[1])*sa + invSa*uint32(dst[1])) >> 8) //nolint:gosec // max 65025>>8
		dst[2] = uint8((uint32(src[2])*sa + invSa*uint32(dst[2])) >> 8) //nolint:gosec // max 65025>>8
		dst[3] = 255
		dst, src = dst[4:], src[4:]
	}
}
