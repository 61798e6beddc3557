package align

// MaxMatrixCells bounds the (w+1)*(h+1) cell count MatrixAligner is willing
// to allocate. It stands in for the allocation-failure path the source C
// module hits when malloc returns NULL: Go has no equivalent recoverable
// signal, so the size is checked before any make() call instead. QAlign is
// the operation most likely to hit this, since it always forces the
// quadratic-space path regardless of input size.
var MaxMatrixCells = 1 << 30

// backDir is a per-layer, per-cell backpointer: the predecessor layer a
// cell's best score came from. Values are {-1: none, 0: M, 1: R, 2: D},
// packed as int8 since the matrices can be large.
type backDir int8

const (
	backNone backDir = -1
	backM    backDir = 0
	backR    backDir = 1
	backD    backDir = 2
)

func checkAlloc(rows, cols int) error {
	total := int64(rows) * int64(cols)
	if total < 0 || total > int64(MaxMatrixCells) {
		return ErrAllocation
	}
	return nil
}

// MatrixAligner computes the full three-layer DP matrix with backpointers
// for A[hl:hr] x B[vl:vr], performs traceback under the given boundary
// directions, and appends the resulting aligned pair to buf. It is the
// Hirschberg recursion's base case, and the sole implementation QAlign
// uses for the entire problem.
func MatrixAligner(buf *buffer, a []byte, hl, hr int, b []byte, vl, vr int, p Params, start, end Direction) (int, error) {
	validateDirection(start)
	validateDirection(end)

	w := hr - hl
	h := vr - vl
	rows, cols := h+1, w+1

	if err := checkAlloc(rows, cols); err != nil {
		return 0, err
	}

	M := make([][]int, rows)
	R := make([][]int, rows)
	D := make([][]int, rows)
	Mdir := make([][]backDir, rows)
	Rdir := make([][]backDir, rows)
	Ddir := make([][]backDir, rows)
	for j := 0; j < rows; j++ {
		M[j] = make([]int, cols)
		R[j] = make([]int, cols)
		D[j] = make([]int, cols)
		Mdir[j] = make([]backDir, cols)
		Rdir[j] = make([]backDir, cols)
		Ddir[j] = make([]backDir, cols)
	}

	// Row 0.
	M[0][0], Mdir[0][0] = 0, backNone
	R[0][0], Rdir[0][0] = sentinel, backNone
	D[0][0], Ddir[0][0] = sentinel, backNone
	for i := 1; i <= w; i++ {
		M[0][i], Mdir[0][i] = sentinel, backNone
		fromM, fromR := M[0][i-1]+p.Gap, R[0][i-1]+p.GapExtend
		if fromM > fromR {
			R[0][i], Rdir[0][i] = fromM, backM
		} else {
			R[0][i], Rdir[0][i] = fromR, backR
		}
		D[0][i], Ddir[0][i] = sentinel, backNone
	}

	// Row 1 (if present) branches on start, exactly as RowScorer's second row.
	if rows > 1 {
		M[1][0], Mdir[1][0] = sentinel, backNone
		R[1][0], Rdir[1][0] = sentinel, backNone

		switch start {
		case DirNone:
			D[1][0], Ddir[1][0] = sentinel, backNone
			for i := 1; i <= w; i++ {
				M[1][i], Mdir[1][i] = M[0][i-1]+p.score(a[hl+i-1], b[vl]), backM
				fromM, fromR := M[1][i-1]+p.Gap, R[1][i-1]+p.GapExtend
				if fromM > fromR {
					R[1][i], Rdir[1][i] = fromM, backM
				} else {
					R[1][i], Rdir[1][i] = fromR, backR
				}
				D[1][i], Ddir[1][i] = sentinel, backNone
			}
		case DirDown:
			D[1][0], Ddir[1][0] = M[0][0]+p.Gap, backM
			for i := 1; i <= w; i++ {
				M[1][i], Mdir[1][i] = sentinel, backNone
				R[1][i], Rdir[1][i] = sentinel, backNone
				D[1][i], Ddir[1][i] = sentinel, backNone
			}
		case DirRight:
			D[1][0], Ddir[1][0] = sentinel, backNone
			for i := 1; i <= w; i++ {
				M[1][i], Mdir[1][i] = R[0][i-1]+p.score(a[hl+i-1], b[vl]), backR
				fromM, fromR := M[1][i-1]+p.Gap, R[1][i-1]+p.GapExtend
				if fromM > fromR {
					R[1][i], Rdir[1][i] = fromM, backM
				} else {
					R[1][i], Rdir[1][i] = fromR, backR
				}
				D[1][i], Ddir[1][i] = sentinel, backNone
			}
		case DirAny:
			D[1][0], Ddir[1][0] = M[0][0]+p.Gap, backM
			for i := 1; i <= w; i++ {
				mm := p.score(a[hl+i-1], b[vl])
				if M[0][i-1] > R[0][i-1] {
					M[1][i], Mdir[1][i] = M[0][i-1]+mm, backM
				} else {
					M[1][i], Mdir[1][i] = R[0][i-1]+mm, backR
				}
				fromM, fromR := M[1][i-1]+p.Gap, R[1][i-1]+p.GapExtend
				if fromM > fromR {
					R[1][i], Rdir[1][i] = fromM, backM
				} else {
					R[1][i], Rdir[1][i] = fromR, backR
				}
				D[1][i], Ddir[1][i] = sentinel, backNone
			}
		default:
			invariant(false, "matrix: start direction %v outside known enumeration", start)
		}
	}

	// Remaining rows: the standard affine recurrence.
	for j := 2; j < rows; j++ {
		M[j][0], Mdir[j][0] = sentinel, backNone
		R[j][0], Rdir[j][0] = sentinel, backNone
		fromM, fromD := M[j-1][0]+p.Gap, D[j-1][0]+p.GapExtend
		if fromM > fromD {
			D[j][0], Ddir[j][0] = fromM, backM
		} else {
			D[j][0], Ddir[j][0] = fromD, backD
		}

		for i := 1; i <= w; i++ {
			fM, fR, fD := M[j-1][i-1], R[j-1][i-1], D[j-1][i-1]
			var diag int
			var diagDir backDir
			if fM > fR && fM > fD {
				diag, diagDir = fM, backM
			} else if fR > fD {
				diag, diagDir = fR, backR
			} else {
				diag, diagDir = fD, backD
			}
			M[j][i] = diag + p.score(a[hl+i-1], b[vl+j-1])
			Mdir[j][i] = diagDir

			fromM, fromR := M[j][i-1]+p.Gap, R[j][i-1]+p.GapExtend
			if fromM > fromR {
				R[j][i], Rdir[j][i] = fromM, backM
			} else {
				R[j][i], Rdir[j][i] = fromR, backR
			}

			fromM, fromD = M[j-1][i]+p.Gap, D[j-1][i]+p.GapExtend
			if fromM > fromD {
				D[j][i], Ddir[j][i] = fromM, backM
			} else {
				D[j][i], Ddir[j][i] = fromD, backD
			}
		}
	}

	lastRow, lastCol := rows-1, cols-1
	var score int
	var trace backDir
	switch end {
	case DirNone:
		score, trace = M[lastRow][lastCol], backM
	case DirRight:
		score, trace = R[lastRow][lastCol], backR
	case DirDown:
		score, trace = D[lastRow][lastCol], backD
	case DirAny:
		mv, rv, dv := M[lastRow][lastCol], R[lastRow][lastCol], D[lastRow][lastCol]
		if mv > rv && mv > dv {
			score, trace = mv, backM
		} else if rv > dv {
			score, trace = rv, backR
		} else {
			score, trace = dv, backD
		}
	default:
		invariant(false, "matrix: end direction %v outside known enumeration", end)
	}

	revA := make([]byte, 0, w+h)
	revB := make([]byte, 0, w+h)
	i, j := w, h
	for i > 0 || j > 0 {
		switch trace {
		case backM:
			invariant(Mdir[j][i] != backNone, "traceback hit an unreachable M cell at (%d,%d)", i, j)
			trace = Mdir[j][i]
			i--
			j--
			revA = append(revA, a[hl+i])
			revB = append(revB, b[vl+j])
		case backR:
			invariant(Rdir[j][i] != backNone, "traceback hit an unreachable R cell at (%d,%d)", i, j)
			trace = Rdir[j][i]
			i--
			revA = append(revA, a[hl+i])
			revB = append(revB, '-')
		case backD:
			invariant(Ddir[j][i] != backNone, "traceback hit an unreachable D cell at (%d,%d)", i, j)
			trace = Ddir[j][i]
			j--
			revA = append(revA, '-')
			revB = append(revB, b[vl+j])
		default:
			invariant(false, "traceback reached an unknown layer at (%d,%d)", i, j)
		}
	}

	buf.appendReversed(revA, revB)
	return score, nil
}
