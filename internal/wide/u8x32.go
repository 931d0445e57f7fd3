package wide

import "encoding/binary"

// U8x32 represents a 256-bit register as 32 bytes. Bytes 0-15 form the low
// 128-bit half and bytes 16-31 the high half.
type U8x32 [32]uint8

// LoadU8x32 places a 64-bit word at the bottom of each 128-bit half and
// zeroes the rest, like _mm256_set_epi64x(0, hi, 0, lo).
func LoadU8x32(lo, hi uint64) U8x32 {
	var r U8x32
	binary.LittleEndian.PutUint64(r[0:8], lo)
	binary.LittleEndian.PutUint64(r[16:24], hi)
	return r
}

// Words returns the low 64 bits of each half.
func (v U8x32) Words() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(v[0:8]), binary.LittleEndian.Uint64(v[16:24])
}

// Shuffle permutes bytes like VPSHUFB. Each half is shuffled independently:
// ctl[i]&15 indexes into the half that contains output byte i, so no byte
// ever crosses between halves. A control byte with the high bit set zeroes
// its output byte.
func (v U8x32) Shuffle(ctl U8x32) U8x32 {
	var r U8x32
	for i := range ctl {
		c := ctl[i]
		if c&ShuffleZero != 0 {
			continue
		}
		r[i] = v[i&^15|int(c&15)]
	}
	return r
}

// SubSat performs unsigned saturating byte subtraction like VPSUBUSB.
func (v U8x32) SubSat(other U8x32) U8x32 {
	var r U8x32
	for i := range v {
		if v[i] > other[i] {
			r[i] = v[i] - other[i]
		}
	}
	return r
}

// Or performs bitwise OR.
func (v U8x32) Or(other U8x32) U8x32 {
	var r U8x32
	for i := range v {
		r[i] = v[i] | other[i]
	}
	return r
}

// U16 reinterprets the register as 16 little-endian uint16 lanes.
func (v U8x32) U16() U16x16 {
	var r U16x16
	for i := range r {
		r[i] = uint16(v[2*i]) | uint16(v[2*i+1])<<8
	}
	return r
}

// JoinU8x32 builds a 256-bit register from two 128-bit halves.
func JoinU8x32(lo, hi U8x16) U8x32 {
	var r U8x32
	copy(r[:16], lo[:])
	copy(r[16:], hi[:])
	return r
}
