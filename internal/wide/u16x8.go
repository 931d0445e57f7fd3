package wide

// U16x8 represents a 128-bit register as 8 uint16 lanes.
type U16x8 [8]uint16

// SplatU16x8 creates U16x8 with all lanes set to n.
func SplatU16x8(n uint16) U16x8 {
	var r U16x8
	for i := range r {
		r[i] = n
	}
	return r
}

// Add performs wrapping lane-wise addition like PADDW.
func (v U16x8) Add(other U16x8) U16x8 {
	var r U16x8
	for i := range v {
		r[i] = v[i] + other[i]
	}
	return r
}

// Mul performs lane-wise multiplication keeping the low 16 bits, like PMULLW.
func (v U16x8) Mul(other U16x8) U16x8 {
	var r U16x8
	for i := range v {
		r[i] = v[i] * other[i]
	}
	return r
}

// Bytes reinterprets the lanes as 16 little-endian bytes.
func (v U16x8) Bytes() U8x16 {
	var r U8x16
	for i, x := range v {
		r[2*i] = uint8(x)        //nolint:gosec // low byte
		r[2*i+1] = uint8(x >> 8) //nolint:gosec // high byte
	}
	return r
}
