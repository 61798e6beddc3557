package align

// row holds one rolling row of the three affine-gap DP layers: M (no
// trailing gap), R (trailing gap in B, i.e. a rightward move), and D
// (trailing gap in A, a downward move). Keeping the three slices together
// in one struct, swapped as a pair between prev/cur, is the Go stand-in for
// the source's six parallel heap-allocated row buffers with pointer swaps.
type row struct {
	m, r, d []int
}

func newRow(w int) row {
	return row{m: make([]int, w+1), r: make([]int, w+1), d: make([]int, w+1)}
}

// RowScorer computes the final row of all three DP layers for the
// sub-rectangle A[hl:hr] x B[vl:vr], in O(hr-hl) space. It is the
// foundation of the Hirschberg recursion: called once forward over the top
// half and once (on pre-reversed sequences) over the bottom half.
//
// start constrains the cell at relative (0,0): it models "this
// sub-alignment continues one that ended in the stated gap state" in the
// caller's larger problem.
func RowScorer(a []byte, hl, hr int, b []byte, vl, vr int, p Params, start Direction) (m, r, d []int) {
	validateDirection(start)

	w := hr - hl
	h := vr - vl

	cur := newRow(w)

	// First row (relative row 0): standard boundary, no dependence on start.
	cur.m[0] = 0
	cur.r[0] = sentinel
	cur.d[0] = sentinel
	for i := 1; i <= w; i++ {
		cur.m[i] = sentinel
		cur.r[i] = max2(cur.m[i-1]+p.Gap, cur.r[i-1]+p.GapExtend)
		cur.d[i] = sentinel
	}

	if h == 0 {
		return cur.m, cur.r, cur.d
	}

	prev := cur
	cur = newRow(w)
	cur.m[0] = sentinel
	cur.r[0] = sentinel

	switch start {
	case DirNone:
		cur.d[0] = sentinel
		for i := 1; i <= w; i++ {
			cur.m[i] = prev.m[i-1] + p.score(a[hl+i-1], b[vl])
			cur.r[i] = max2(cur.m[i-1]+p.Gap, cur.r[i-1]+p.GapExtend)
			cur.d[i] = sentinel
		}
	case DirDown:
		cur.d[0] = p.Gap
		for i := 1; i <= w; i++ {
			cur.m[i] = sentinel
			cur.r[i] = sentinel
			cur.d[i] = sentinel
		}
	case DirRight:
		cur.d[0] = sentinel
		for i := 1; i <= w; i++ {
			cur.m[i] = prev.r[i-1] + p.score(a[hl+i-1], b[vl])
			cur.r[i] = max2(cur.m[i-1]+p.Gap, cur.r[i-1]+p.GapExtend)
			cur.d[i] = sentinel
		}
	case DirAny:
		cur.d[0] = p.Gap
		for i := 1; i <= w; i++ {
			cur.m[i] = max2(prev.m[i-1], prev.r[i-1]) + p.score(a[hl+i-1], b[vl])
			cur.r[i] = max2(cur.m[i-1]+p.Gap, cur.r[i-1]+p.GapExtend)
			cur.d[i] = sentinel
		}
	default:
		invariant(false, "rowscorer: start direction %v outside known enumeration", start)
	}

	// Remaining rows use the standard affine recurrence.
	for j := 2; j <= h; j++ {
		prev, cur = cur, prev

		cur.m[0] = sentinel
		cur.r[0] = sentinel
		cur.d[0] = max2(prev.m[0]+p.Gap, prev.d[0]+p.GapExtend)

		for i := 1; i <= w; i++ {
			cur.m[i] = max3(prev.m[i-1], prev.r[i-1], prev.d[i-1]) + p.score(a[hl+i-1], b[vl+j-1])
			cur.d[i] = max2(prev.m[i]+p.Gap, prev.d[i]+p.GapExtend)
			cur.r[i] = max2(cur.m[i-1]+p.Gap, cur.r[i-1]+p.GapExtend)
		}
	}

	return cur.m, cur.r, cur.d
}
