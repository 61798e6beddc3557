package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScoreHandler(t *testing.T) {
	rec := postJSON(t, ScoreHandler, AlignRequest{
		Sequence1: "ACGTACGT",
		Sequence2: "ACGTACGT",
		Match:     1,
		Mismatch:  -1,
		GapOpen:   -2,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Score)
}

func TestScoreHandlerRejectsMissingSequence(t *testing.T) {
	rec := postJSON(t, ScoreHandler, AlignRequest{Sequence1: "ACGT"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGlobalAlignHandler(t *testing.T) {
	gapExtend := -1
	rec := postJSON(t, GlobalAlignHandler, AlignRequest{
		Sequence1: "ACGTACGT",
		Sequence2: "ACGTCGT",
		Match:     1,
		Mismatch:  -1,
		GapOpen:   -2,
		GapExtend: &gapExtend,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AlignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.CIGAR)
	assert.Equal(t, len(resp.AlignedSeq1), len(resp.AlignedSeq2))
}

func TestQAlignHandlerAgreesWithGlobalAlign(t *testing.T) {
	req := AlignRequest{Sequence1: "ACGTACGT", Sequence2: "ACGTCGT", Match: 1, Mismatch: -1, GapOpen: -2}

	globalRec := postJSON(t, GlobalAlignHandler, req)
	qRec := postJSON(t, QAlignHandler, req)

	var globalResp, qResp AlignResponse
	require.NoError(t, json.Unmarshal(globalRec.Body.Bytes(), &globalResp))
	require.NoError(t, json.Unmarshal(qRec.Body.Bytes(), &qResp))

	assert.Equal(t, globalResp.Score, qResp.Score)
}

func TestInvalidJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	ScoreHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
