// Package alignkit is the public facade over the affine-gap alignment
// engine: it re-exports the core types callers need and adds the FASTA
// convenience functions a command-line tool or HTTP service wants but a
// pure alignment library should not carry.
package alignkit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alignkit/affine/internal/align"
	"github.com/alignkit/affine/internal/sequence"
)

// Version identifies this module for CLI/HTTP version reporting.
const Version = "0.1.0"

// Params configures match/mismatch/gap-open/gap-extend scoring. See
// internal/align.Params for the full contract.
type Params = align.Params

// Result is the outcome of a pairwise global alignment.
type Result = align.Result

// NewParams builds scoring parameters with an explicit gap-extend penalty.
func NewParams(match, mismatch, gapOpen, gapExtend int) Params {
	return align.NewParams(match, mismatch, gapOpen, gapExtend)
}

// NewLinearParams builds scoring parameters under a linear (non-affine)
// gap model: every gap position costs gapOpen.
func NewLinearParams(match, mismatch, gapOpen int) Params {
	return align.NewLinearParams(match, mismatch, gapOpen)
}

// Score computes the optimal alignment score in linear space without
// recovering the alignment itself.
func Score(a, b []byte, p Params) int {
	return align.Score(a, b, p)
}

// Align computes an optimal global alignment in O(m+n) space using
// Hirschberg's algorithm. Suitable for long sequences.
func Align(a, b []byte, p Params) (Result, error) {
	return align.Align(a, b, p)
}

// QAlign computes an optimal global alignment using the quadratic-space
// dynamic-programming matrix directly. Useful for short sequences and as
// a correctness check against Align.
func QAlign(a, b []byte, p Params) (Result, error) {
	return align.QAlign(a, b, p)
}

// CIGAR renders a Result's aligned pair as a CIGAR string (M/I/D runs).
func CIGAR(res Result) string {
	if len(res.AlignedA) == 0 {
		return ""
	}
	var sb strings.Builder
	runLen := 0
	var runOp byte
	flush := func() {
		if runLen == 0 {
			return
		}
		fmt.Fprintf(&sb, "%d%c", runLen, runOp)
	}
	for i := range res.AlignedA {
		ac, bc := res.AlignedA[i], res.AlignedB[i]
		var op byte
		switch {
		case ac == sequence.GapByte:
			op = 'I'
		case bc == sequence.GapByte:
			op = 'D'
		default:
			op = 'M'
		}
		if op == runOp {
			runLen++
			continue
		}
		flush()
		runOp = op
		runLen = 1
	}
	flush()
	return sb.String()
}

// Identity returns the fraction of aligned columns that are matches
// (excludes gap columns from the denominator).
func Identity(res Result) float64 {
	matches, compared := 0, 0
	for i := range res.AlignedA {
		ac, bc := res.AlignedA[i], res.AlignedB[i]
		if ac == sequence.GapByte || bc == sequence.GapByte {
			continue
		}
		compared++
		if ac == bc {
			matches++
		}
	}
	if compared == 0 {
		return 0
	}
	return float64(matches) / float64(compared)
}

// ReadFASTA parses one or more FASTA records from r.
func ReadFASTA(r io.Reader) ([]*sequence.Record, error) {
	var records []*sequence.Record
	var id, desc string
	var bases strings.Builder

	flush := func() error {
		if id == "" && bases.Len() == 0 {
			return nil
		}
		rec, err := sequence.WithMetadata([]byte(bases.String()), id, desc)
		if err != nil {
			return fmt.Errorf("alignkit: record %q: %w", id, err)
		}
		records = append(records, rec)
		bases.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header := strings.TrimPrefix(line, ">")
			parts := strings.SplitN(header, " ", 2)
			id = parts[0]
			desc = ""
			if len(parts) == 2 {
				desc = parts[1]
			}
			continue
		}
		bases.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("alignkit: reading FASTA: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("alignkit: no FASTA records found")
	}
	return records, nil
}

// WriteFASTA writes records to w, wrapping sequence lines at width
// characters (a width of 0 disables wrapping).
func WriteFASTA(w io.Writer, records []*sequence.Record, width int) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s", rec.ID); err != nil {
			return err
		}
		if rec.Description != "" {
			if _, err := fmt.Fprintf(w, " %s", rec.Description); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if width <= 0 {
			if _, err := fmt.Fprintln(w, string(rec.Bases)); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < len(rec.Bases); i += width {
			end := i + width
			if end > len(rec.Bases) {
				end = len(rec.Bases)
			}
			if _, err := fmt.Fprintln(w, string(rec.Bases[i:end])); err != nil {
				return err
			}
		}
	}
	return nil
}
