package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/textproc"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	annotator, err := textproc.NewAnnotator()
	require.NoError(t, err)
	dict, err := dictionary.Load()
	require.NoError(t, err)
	eng, err := engine.New(annotator, dict, config.Default())
	require.NoError(t, err)
	srv, err := New(eng, config.DefaultPort)
	require.NoError(t, err)
	return srv
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil, config.DefaultPort)
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	srv := newTestServer(t)

	payload := `{
		"resume_text": "Python developer with Docker and Kubernetes experience.",
		"job_description_text": "Seeking a Python engineer who knows Docker."
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.AnalysisID)
	assert.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.GreaterOrEqual(t, resp.Result.OverallScore, 0.0)
	assert.LessOrEqual(t, resp.Result.OverallScore, 100.0)
	assert.NotEmpty(t, resp.Result.Suggestions)
}

func TestAnalyzeEndpoint_EmptyTextsAreValid(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"resume_text": "", "job_description_text": ""}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, 0.0, resp.Result.SemanticScore)
}

func TestAnalyzeEndpoint_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"resume_text": `))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid JSON body", body["error"])
}

func TestAnalyzeEndpoint_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	for _, payload := range []string{
		`{}`,
		`{"resume_text": "some text"}`,
		`{"job_description_text": "some text"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "required")
	}
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
