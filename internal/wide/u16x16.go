package wide

// U16x16 represents a 256-bit register as 16 uint16 lanes.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs wrapping element-wise addition like VPADDW.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication keeping the low 16 bits, like
// VPMULLW.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Bytes reinterprets the lanes as 32 little-endian bytes.
func (v U16x16) Bytes() U8x32 {
	var result U8x32
	for i, x := range v {
		result[2*i] = uint8(x)        //nolint:gosec // low byte
		result[2*i+1] = uint8(x >> 8) //nolint:gosec // high byte
	}
	return result
}
