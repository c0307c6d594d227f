package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/prompter/internal/solver"
)

func newTestServer() *Server {
	pool := solver.NewPool([]string{"abcde", "fghij", "klmno"})
	return New(pool, solver.PartitionCount{}, 1, 10)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestRankEmptyHistory(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{})

	require.Equal(t, http.StatusOK, rec.Code)
	var res rankRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "playing", res.State)
	assert.Equal(t, 3, res.Remaining)
	assert.Len(t, res.Suggestions, 3)
}

func TestRankWithHistory(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{
		History: []historyEntry{{Word: "abcde", Code: "_____"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res rankRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "playing", res.State)
	assert.Equal(t, 2, res.Remaining)
}

func TestRankWon(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{
		History: []historyEntry{{Word: "fghij", Code: "GGGGG"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res rankRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "won", res.State)
	assert.Empty(t, res.Suggestions)
}

func TestRankStuck(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{
		History: []historyEntry{{Word: "zzzzz", Code: "Y____"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res rankRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "stuck", res.State)
	assert.Equal(t, 0, res.Remaining)
}

func TestRankBadCode(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{
		History: []historyEntry{{Word: "abcde", Code: "GGQGG"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankBadWordLength(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/rank", rankReq{
		History: []historyEntry{{Word: "abc", Code: "___"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankCached(t *testing.T) {
	s := newTestServer()
	body := rankReq{History: []historyEntry{{Word: "abcde", Code: "_____"}}}

	first := postJSON(t, s, "/api/rank", body)
	second := postJSON(t, s, "/api/rank", body)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestBuckets(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/buckets", bucketsReq{Word: "abcde"})

	require.Equal(t, http.StatusOK, rec.Code)
	var res bucketsRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "abcde", res.Word)
	// abcde vs itself -> GGGGG, vs fghij/klmno -> _____.
	assert.Equal(t, 2, res.Count)
}

func TestBucketsBadWord(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s, "/api/buckets", bucketsReq{Word: "ab"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
