// Package align implements global pairwise sequence alignment under an
// affine gap-penalty model (Needleman-Wunsch with gap-open and
// gap-extend penalties). It exposes score-only, linear-space Hirschberg,
// and quadratic-space alignment as pure, single-threaded functions over
// byte slices: no alphabet is assumed, characters are compared by byte
// equality, and no state persists between calls.
package align

// Result is the outcome of Align or QAlign: two equal-length byte slices
// over the input alphabet plus the gap byte '-', which reproduce A and B
// respectively when '-' is stripped, and the alignment's score.
type Result struct {
	AlignedA []byte
	AlignedB []byte
	Score    int
}

// orient picks the shorter of a, b to play the horizontal role the rest of
// the engine assumes, reporting whether it swapped. RowScorer's row length
// is the horizontal extent, so this choice bounds Score's space and caps
// Align's recursion base case at the smaller dimension.
func orient(a, b []byte) (horizontal, vertical []byte, swapped bool) {
	if len(a) <= len(b) {
		return a, b, false
	}
	return b, a, true
}

// Score computes the optimal alignment score without producing an
// alignment, in O(min(len(a), len(b))) space.
func Score(a, b []byte, p Params) int {
	horizontal, vertical, _ := orient(a, b)
	m, r, d := RowScorer(horizontal, 0, len(horizontal), vertical, 0, len(vertical), p, DirAny)
	w := len(horizontal)
	return max3(m[w], r[w], d[w])
}

// Align computes an optimal global alignment via the Hirschberg
// divide-and-conquer recursion, using O(len(a)+len(b)) space regardless of
// how large the inputs are.
func Align(a, b []byte, p Params) (Result, error) {
	return alignWith(a, b, p, hirschDriver)
}

// QAlign computes the same result as Align but always materializes the
// full quadratic-space DP matrices. It is used as a correctness oracle for
// Align and for inputs small enough that O(len(a)*len(b)) memory is
// acceptable.
func QAlign(a, b []byte, p Params) (Result, error) {
	return alignWith(a, b, p, func(buf *buffer, a, b, _, _ []byte, hl, hr, vl, vr int, p Params, start, end Direction) (int, error) {
		return MatrixAligner(buf, a, hl, hr, b, vl, vr, p, start, end)
	})
}

type aligner func(buf *buffer, a, b, revA, revB []byte, hl, hr int, vl, vr int, p Params, start, end Direction) (int, error)

func alignWith(a, b []byte, p Params, run aligner) (Result, error) {
	horizontal, vertical, swapped := orient(a, b)

	revH := reverseBytes(horizontal)
	revV := reverseBytes(vertical)

	buf := newBuffer(len(horizontal) + len(vertical))
	score, err := run(buf, horizontal, vertical, revH, revV, 0, len(horizontal), 0, len(vertical), p, DirAny, DirAny)
	if err != nil {
		return Result{}, err
	}

	alignedH := buf.a[:buf.cursor]
	alignedV := buf.b[:buf.cursor]

	if swapped {
		return Result{AlignedA: alignedV, AlignedB: alignedH, Score: score}, nil
	}
	return Result{AlignedA: alignedH, AlignedB: alignedV, Score: score}, nil
}
