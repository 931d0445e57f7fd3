package blend

// Float composites src over dst pixel by pixel in normalized float
// arithmetic. It is the correctness oracle for every other kernel.
//
// Pixels whose composite alpha is zero are left unchanged. Returns the number
// of such degenerate pixels.
func Float(dst, src []byte) int {
	n := min(len(dst), len(src)) &^ 3
	degenerate := 0
	for i := 0; i < n; i += 4 {
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]
		out, ok := SourceOverFloat([4]uint8{d[0], d[1], d[2], d[3]}, [4]uint8{s[0], s[1], s[2], s[3]})
		if !ok {
			degenerate++
			continue
		}
		d[0], d[1], d[2], d[3] = out[0], out[1], out[2], out[3]
	}
	return degenerate
}
