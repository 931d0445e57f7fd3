package blend

import "sync"

// DivTable is the precomputed "divide by alpha" table used to unmultiply
// premultiplied channels without a runtime division.
//
//	T[n][d] = min(255, round(255 * n / d))  for d > 0
//
// Row d == 0 is left zero and must never be read: a zero composite alpha is
// handled by the caller before the lookup. The table is read-only once built
// and is shared by all fixed-point invocations. 64KB memory cost.
type DivTable [256][256]uint8

var (
	divTableOnce sync.Once
	divTable     *DivTable
)

// Table returns the process-wide division table, building it on first use.
func Table() *DivTable {
	divTableOnce.Do(func() {
		divTable = NewDivTable()
	})
	return divTable
}

// NewDivTable builds a fresh table. Most callers want Table.
func NewDivTable() *DivTable {
	t := new(DivTable)
	for n := 0; n < 256; n++ {
		for d := 1; d < 256; d++ {
			// round(255n/d) in integers: (2*255n + d) / (2d)
			v := (510*n + d) / (2 * d)
			if v > 255 {
				v = 255
			}
			t[n][d] = uint8(v) //nolint:gosec // clamped above
		}
	}
	return t
}

// Unmultiply returns T[n][d]. d must be non-zero.
func (t *DivTable) Unmultiply(n, d uint8) uint8 {
	return t[n][d]
}
