// Package handlers implements the HTTP handlers backing alignkit-server's
// REST API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alignkit/affine/pkg/alignkit"
)

// AlignRequest is the JSON body shared by /api/align/score,
// /api/align/global and /api/align/quadratic.
type AlignRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Match     int    `json:"match"`
	Mismatch  int    `json:"mismatch"`
	GapOpen   int    `json:"gap_open"`
	GapExtend *int   `json:"gap_extend,omitempty"`
}

func (req AlignRequest) params() alignkit.Params {
	if req.GapExtend != nil {
		return alignkit.NewParams(req.Match, req.Mismatch, req.GapOpen, *req.GapExtend)
	}
	return alignkit.NewLinearParams(req.Match, req.Mismatch, req.GapOpen)
}

// ScoreResponse is the body returned by /api/align/score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// AlignResponse is the body returned by /api/align/global and
// /api/align/quadratic.
type AlignResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (AlignRequest, bool) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if req.Sequence1 == "" || req.Sequence2 == "" {
		writeError(w, http.StatusBadRequest, "sequence1 and sequence2 are required")
		return req, false
	}
	return req, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// ScoreHandler handles POST /api/align/score.
func ScoreHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	score := alignkit.Score([]byte(req.Sequence1), []byte(req.Sequence2), req.params())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}

// GlobalAlignHandler handles POST /api/align/global, computed with the
// linear-space Hirschberg driver.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := alignkit.Align([]byte(req.Sequence1), []byte(req.Sequence2), req.params())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeAlignResponse(w, res)
}

// QAlignHandler handles POST /api/align/quadratic, computed directly from
// the quadratic-space dynamic-programming matrix.
func QAlignHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := alignkit.QAlign([]byte(req.Sequence1), []byte(req.Sequence2), req.params())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeAlignResponse(w, res)
}

func writeAlignResponse(w http.ResponseWriter, res alignkit.Result) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignResponse{
		AlignedSeq1: string(res.AlignedA),
		AlignedSeq2: string(res.AlignedB),
		Score:       res.Score,
		Identity:    alignkit.Identity(res),
		CIGAR:       alignkit.CIGAR(res),
	})
}
