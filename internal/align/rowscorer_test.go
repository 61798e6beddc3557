package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowScorerMatchesMatrixAlignerBottomRow(t *testing.T) {
	p := NewParams(2, -1, -3, -1)
	a, b := []byte("ACGTACGT"), []byte("ACGGACCT")

	m, r, d := RowScorer(a, 0, len(a), b, 0, len(b), p, DirAny)

	buf := newBuffer(len(a) + len(b))
	score, err := MatrixAligner(buf, a, 0, len(a), b, 0, len(b), p, DirAny, DirAny)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, score, max3(m[len(a)], r[len(a)], d[len(a)]))
}

func TestRowScorerStartDirections(t *testing.T) {
	p := NewParams(1, -1, -2, -1)
	a, b := []byte("AAAA"), []byte("AAAA")

	for _, start := range []Direction{DirNone, DirRight, DirDown, DirAny} {
		m, r, d := RowScorer(a, 0, len(a), b, 0, len(b), p, start)
		assert.Len(t, m, len(a)+1)
		assert.Len(t, r, len(a)+1)
		assert.Len(t, d, len(a)+1)
	}
}

func TestRowScorerEmptyVertical(t *testing.T) {
	p := NewParams(1, -1, -2, -1)
	a := []byte("ACGT")

	m, r, d := RowScorer(a, 0, len(a), nil, 0, 0, p, DirAny)
	// With no vertical extent, every horizontal step must be a gap in B.
	want := p.Gap + (len(a)-1)*p.GapExtend
	assert.Equal(t, want, r[len(a)])
	assert.Equal(t, sentinel, d[len(a)])
	assert.Less(t, m[len(a)], r[len(a)])
}
