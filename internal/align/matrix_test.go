package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixAlignerEndDirections(t *testing.T) {
	p := NewParams(1, -1, -2, -1)
	a, b := []byte("ACGT"), []byte("ACGT")

	for _, end := range []Direction{DirNone, DirRight, DirDown, DirAny} {
		buf := newBuffer(len(a) + len(b))
		score, err := MatrixAligner(buf, a, 0, len(a), b, 0, len(b), p, DirAny, end)
		require.NoError(t, err)
		assert.Equal(t, len(buf.a[:buf.cursor]), len(buf.b[:buf.cursor]))
		if end == DirNone {
			// Identical inputs ending flush with no trailing gap recovers
			// the pure-match score.
			assert.Equal(t, p.Match*len(a), score)
		}
	}
}

func TestMatrixAlignerTracebackReproducesInputs(t *testing.T) {
	p := NewParams(2, -1, -3, -1)
	a, b := []byte("AGTACGCA"), []byte("TATGC")

	buf := newBuffer(len(a) + len(b))
	_, err := MatrixAligner(buf, a, 0, len(a), b, 0, len(b), p, DirAny, DirAny)
	require.NoError(t, err)

	assert.Equal(t, "AGTACGCA", stripGaps(buf.a[:buf.cursor]))
	assert.Equal(t, "TATGC", stripGaps(buf.b[:buf.cursor]))
}

func TestCheckAlloc(t *testing.T) {
	old := MaxMatrixCells
	defer func() { MaxMatrixCells = old }()

	MaxMatrixCells = 100
	assert.NoError(t, checkAlloc(5, 5))
	assert.ErrorIs(t, checkAlloc(1000, 1000), ErrAllocation)
}
