package wide

import "encoding/binary"

// ShuffleZero is the control byte value that zeroes a shuffle output lane.
const ShuffleZero = 0x80

// U8x16 represents a 128-bit register as 16 bytes.
type U8x16 [16]uint8

// LoadU8x16Word loads a little-endian 64-bit word into the low half and
// zeroes the high half, like MOVQ.
func LoadU8x16Word(w uint64) U8x16 {
	var r U8x16
	binary.LittleEndian.PutUint64(r[:8], w)
	return r
}

// Word returns the low 64 bits as a little-endian word.
func (v U8x16) Word() uint64 {
	return binary.LittleEndian.Uint64(v[:8])
}

// Shuffle permutes bytes like PSHUFB: output byte i is v[ctl[i]&15], or zero
// when ctl[i] has its high bit set.
func (v U8x16) Shuffle(ctl U8x16) U8x16 {
	var r U8x16
	for i := range ctl {
		c := ctl[i]
		if c&ShuffleZero != 0 {
			continue
		}
		r[i] = v[c&15]
	}
	return r
}

// SubSat performs unsigned saturating byte subtraction like PSUBUSB.
func (v U8x16) SubSat(other U8x16) U8x16 {
	var r U8x16
	for i := range v {
		if v[i] > other[i] {
			r[i] = v[i] - other[i]
		}
	}
	return r
}

// Or performs bitwise OR.
func (v U8x16) Or(other U8x16) U8x16 {
	var r U8x16
	for i := range v {
		r[i] = v[i] | other[i]
	}
	return r
}

// U16 reinterprets the register as 8 little-endian uint16 lanes.
func (v U8x16) U16() U16x8 {
	var r U16x8
	for i := range r {
		r[i] = uint16(v[2*i]) | uint16(v[2*i+1])<<8
	}
	return r
}
