package align

// HirschThreshold is the w*h cell count below which HirschDriver delegates
// to MatrixAligner instead of splitting further. Below it, the quadratic
// aligner's better constant factors and cache behavior outrun Hirschberg's
// extra pass; above it, linear space wins. It is a tuning knob, not a
// correctness parameter, so it is a package variable rather than a const.
var HirschThreshold = 1_000_000

// hirschDriver recursively aligns A[hl:hr] x B[vl:vr] under boundary tags
// (start, end), appending to buf. revA and revB are full-sequence reversals
// of a and b, computed once by the Facade and threaded down so the
// backward RowScorer call can reuse the same coordinate-translation trick
// the source implementation uses instead of re-reversing on every call.
func hirschDriver(buf *buffer, a, b, revA, revB []byte, hl, hr, vl, vr int, p Params, start, end Direction) (int, error) {
	w := hr - hl
	h := vr - vl

	if w*h <= HirschThreshold || w <= 1 || h <= 1 {
		return MatrixAligner(buf, a, hl, hr, b, vl, vr, p, start, end)
	}

	vMid := (vl + vr) / 2

	lm, lr, ld := RowScorer(a, hl, hr, b, vl, vMid, p, start)

	na, nb := len(a), len(b)
	rm, rr, rd := RowScorer(revA, na-hr, na-hl, revB, nb-vr, nb-vMid, p, end)

	iStar, leftEnd, rightStart := Partition(
		threeLayerRow{m: lm, r: lr, d: ld},
		threeLayerRow{m: rm, r: rr, d: rd},
		w, p.Gap, p.GapExtend)
	hMid := hl + iStar

	leftScore, err := hirschDriver(buf, a, b, revA, revB, hl, hMid, vl, vMid, p, start, leftEnd)
	if err != nil {
		return 0, err
	}
	rightScore, err := hirschDriver(buf, a, b, revA, revB, hMid, hr, vMid, vr, p, rightStart, end)
	if err != nil {
		return 0, err
	}

	total := leftScore + rightScore
	if leftEnd == DirDown && rightStart == DirDown {
		// The two halves each priced their own gap open; only one gap
		// actually crosses the seam.
		total += p.GapExtend - p.Gap
	}
	return total, nil
}

func reverseBytes(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}
