package wide

import "testing"

func TestU8x32_ShuffleStaysInHalf(t *testing.T) {
	var v U8x32
	for i := range v {
		v[i] = uint8(100 + i)
	}

	// The same control byte selects different sources in each half.
	var ctl U8x32
	for i := range ctl {
		ctl[i] = 2
	}
	got := v.Shuffle(ctl)
	for i := 0; i < 16; i++ {
		if got[i] != 102 {
			t.Fatalf("low half byte %d = %d, want 102", i, got[i])
		}
	}
	for i := 16; i < 32; i++ {
		if got[i] != 118 {
			t.Fatalf("high half byte %d = %d, want 118", i, got[i])
		}
	}
}

func halves(v U8x32) (lo, hi U8x16) {
	copy(lo[:], v[:16])
	copy(hi[:], v[16:])
	return lo, hi
}

func TestU8x32_ShuffleMatchesHalves(t *testing.T) {
	var v, ctl U8x32
	for i := range v {
		v[i] = uint8(i * 7)
		ctl[i] = uint8((i * 5) % 16)
	}
	ctl[3] = ShuffleZero
	ctl[20] = 0x9F

	got := v.Shuffle(ctl)

	vLo, vHi := halves(v)
	cLo, cHi := halves(ctl)
	want := JoinU8x32(vLo.Shuffle(cLo), vHi.Shuffle(cHi))
	if got != want {
		t.Errorf("Shuffle() = %v, want %v", got, want)
	}
	if got[3] != 0 || got[20] != 0 {
		t.Errorf("zeroing control bytes not honoured: %d %d", got[3], got[20])
	}
}

func TestLoadU8x32(t *testing.T) {
	r := LoadU8x32(0x0807060504030201, 0x1817161514131211)
	if r[0] != 0x01 || r[7] != 0x08 || r[8] != 0 {
		t.Errorf("low half = %v", r[:16])
	}
	if r[16] != 0x11 || r[23] != 0x18 || r[24] != 0 {
		t.Errorf("high half = %v", r[16:])
	}
	lo, hi := r.Words()
	if lo != 0x0807060504030201 || hi != 0x1817161514131211 {
		t.Errorf("Words() = %#x, %#x", lo, hi)
	}
}

func TestU8x32_SubSatOr(t *testing.T) {
	var a, b U8x32
	a[0], b[0] = 255, 55
	a[31], b[31] = 3, 9
	got := a.SubSat(b)
	if got[0] != 200 || got[31] != 0 {
		t.Errorf("SubSat() = %v", got)
	}
	var m U8x32
	m[5] = 0xFF
	if o := got.Or(m); o[5] != 0xFF || o[0] != 200 {
		t.Errorf("Or() = %v", o)
	}
}
