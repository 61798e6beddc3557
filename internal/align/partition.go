package align

// Partition selects, for a Hirschberg split of width w, the column i* at
// which to cut plus the pair of gap-state tags the two recursive calls
// must honor at the seam.
//
// l holds the forward RowScorer output from the top half (rows vl..vMid);
// r holds the reverse RowScorer output from the bottom half, computed on
// reversed sequences so that its "bottom row" is, in original-orientation
// terms, the row directly above vMid. Both have length w+1.
//
// Five seam shapes are considered, in a fixed order so ties resolve
// deterministically (earliest listed combination wins, scanned in
// increasing i). An R/R combination is deliberately not considered: the
// split is vertical, so a horizontal gap never crosses it and never needs
// to be re-charged on both sides.
func Partition(l, r threeLayerRow, w int, gap, gapExtend int) (iStar int, left, right Direction) {
	best := sentinel * 2 // below anything a real combination can produce

	for i := 0; i <= w; i++ {
		j := w - i

		if s := l.m[i] + r.m[j]; s > best {
			best, iStar, left, right = s, i, DirNone, DirNone
		}
		if s := l.m[i] + r.d[j]; s > best {
			best, iStar, left, right = s, i, DirNone, DirDown
		}
		if s := l.d[i] + r.m[j]; s > best {
			best, iStar, left, right = s, i, DirDown, DirNone
		}
		// Both sides opened their own D-gap; only one gap actually crosses
		// the seam, so two separate opens must be corrected to one
		// opened-then-extended gap.
		if s := l.d[i] + r.d[j] - gap + gapExtend; s > best {
			best, iStar, left, right = s, i, DirDown, DirDown
		}
		if s := l.r[i] + r.m[j]; s > best {
			best, iStar, left, right = s, i, DirRight, DirNone
		}
	}

	return iStar, left, right
}

// threeLayerRow packages a RowScorer result so Partition doesn't need to
// take six separate slice arguments.
type threeLayerRow struct {
	m, r, d []int
}
