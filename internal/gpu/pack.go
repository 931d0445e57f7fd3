//go:build !nogpu

package gpu

import "encoding/binary"

// packPixels converts interleaved RGBA bytes to the kernel's u32 layout.
func packPixels(data []uint8, pixelCount int) []byte {
	out := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		s := data[i*4 : i*4+4 : i*4+4]
		packed := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		binary.LittleEndian.PutUint32(out[i*4:], packed)
	}
	return out
}

// unpackPixels writes kernel output back as interleaved RGBA bytes.
func unpackPixels(packed []byte, dst []uint8, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		val := binary.LittleEndian.Uint32(packed[i*4:])
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(val)       //nolint:gosec // low byte
		d[1] = uint8(val >> 8)  //nolint:gosec // byte 1
		d[2] = uint8(val >> 16) //nolint:gosec // byte 2
		d[3] = uint8(val >> 24) //nolint:gosec // byte 3
	}
}

// paramsBytes encodes the Params uniform: width, height and two pad words.
func paramsBytes(width, height uint32) []byte {
	b := make([]byte, paramsSize)
	binary.LittleEndian.PutUint32(b[0:], width)
	binary.LittleEndian.PutUint32(b[4:], height)
	return b
}

const paramsSize = 16
