package blend

// Fixed composites src over dst in premultiplied integer arithmetic using the
// division table for the unmultiply step.
//
// Pixels whose composite alpha is zero are left unchanged. Returns the number
// of such degenerate pixels.
func Fixed(dst, src []byte, t *DivTable) int {
	if t == nil {
		t = Table()
	}
	n := min(len(dst), len(src)) &^ 3
	degenerate := 0
	for i := 0; i < n; i += 4 {
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]
		out, ok := SourceOverFixed([4]uint8{d[0], d[1], d[2], d[3]}, [4]uint8{s[0], s[1], s[2], s[3]}, t)
		if !ok {
			degenerate++
			continue
		}
		d[0], d[1], d[2], d[3] = out[0], out[1], out[2], out[3]
	}
	return degenerate
}

// FixedSlack is how far SourceOverFixed may stray from SourceOverFloat,
// beyond the common rounding tolerance, on a pixel whose composite alpha is
// alpha. Color is premultiplied into 8 bits before the table lookup, and
// unmultiplying by a small alpha scales that rounding error by up to
// 255/alpha per term.
func FixedSlack(alpha uint8) int {
	if alpha == 0 {
		return 0
	}
	return 520 / int(alpha)
}
