package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHirschDriverFallsBackBelowThreshold(t *testing.T) {
	// Default HirschThreshold is large enough that small inputs never
	// recurse; this just exercises the base-case path directly.
	p := NewParams(1, -1, -2, -1)
	a, b := []byte("ACGT"), []byte("ACGT")
	buf := newBuffer(len(a) + len(b))

	score, err := hirschDriver(buf, a, b, reverseBytes(a), reverseBytes(b), 0, len(a), 0, len(b), p, DirAny, DirAny)
	require.NoError(t, err)
	assert.Equal(t, 4, score)
}

func TestHirschDriverRecursesAndMatchesQAlign(t *testing.T) {
	old := HirschThreshold
	HirschThreshold = 4
	defer func() { HirschThreshold = old }()

	p := NewParams(1, -1, -2, -1)
	a := []byte("ACGTACGTACGTACGT")
	b := []byte("ACGTCCGTACGTACAT")

	aligned, err := Align(a, b, p)
	require.NoError(t, err)
	quad, err := QAlign(a, b, p)
	require.NoError(t, err)

	assert.Equal(t, quad.Score, aligned.Score)
	assert.Equal(t, string(a), stripGaps(aligned.AlignedA))
	assert.Equal(t, string(b), stripGaps(aligned.AlignedB))
}

func TestHirschDriverSingleRowOrColumn(t *testing.T) {
	p := NewParams(1, -1, -2, -1)

	res, err := Align([]byte("A"), []byte("AAAAAAAAAA"), p)
	require.NoError(t, err)
	assert.Equal(t, "A", stripGaps(res.AlignedA))
	assert.Equal(t, "AAAAAAAAAA", stripGaps(res.AlignedB))
}
