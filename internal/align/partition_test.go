package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionSplitReproducesWholeScore(t *testing.T) {
	p := NewParams(1, -1, -2, -1)
	a, b := []byte("ACGTACGT"), []byte("ACGGACAT")

	vMid := len(b) / 2
	lm, lr, ld := RowScorer(a, 0, len(a), b, 0, vMid, p, DirAny)

	revA := reverseBytes(a)
	revB := reverseBytes(b)
	rm, rr, rd := RowScorer(revA, 0, len(a), revB, 0, len(b)-vMid, p, DirAny)

	iStar, left, right := Partition(
		threeLayerRow{m: lm, r: lr, d: ld},
		threeLayerRow{m: rm, r: rr, d: rd},
		len(a), p.Gap, p.GapExtend)

	assert.GreaterOrEqual(t, iStar, 0)
	assert.LessOrEqual(t, iStar, len(a))
	assert.Contains(t, []Direction{DirNone, DirRight, DirDown}, left)
	assert.Contains(t, []Direction{DirNone, DirDown}, right)

	// Splitting at iStar must reproduce the same score Score finds for the
	// whole problem, once the seam correction is applied.
	buf := newBuffer(len(a) + len(b))
	leftScore, err := MatrixAligner(buf, a, 0, iStar, b, 0, vMid, p, DirAny, left)
	if err != nil {
		t.Fatal(err)
	}
	rightScore, err := MatrixAligner(buf, a, iStar, len(a), b, vMid, len(b), p, right, DirAny)
	if err != nil {
		t.Fatal(err)
	}
	total := leftScore + rightScore
	if left == DirDown && right == DirDown {
		total += p.GapExtend - p.Gap
	}

	want := Score(a, b, p)
	assert.Equal(t, want, total)
}
