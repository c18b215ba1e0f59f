package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/api/apierr"
	"github.com/mcoot/mockify/internal/model"
)

type upload struct {
	field, name, body string
}

func (ts *testServer) upload(path string, files []upload, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		w, _ := mw.CreateFormFile(f.field, f.name)
		_, _ = w.Write([]byte(f.body))
	}
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestResumeAnalyze(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Local.Response = `{"ats_score": 82, "skills": ["Go"], "summary": "Strong", "improvements": ["Add metrics"]}`

	rr := ts.upload("/api/resume/analyze", []upload{{"resume", "jane.txt", "Jane Doe, Go developer"}}, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.ResumeReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 82, report.ATSScore)
	assert.Equal(t, []string{"Go"}, report.Skills)
	require.Len(t, ts.app.Local.Prompts, 1)
	assert.Contains(t, ts.app.Local.Prompts[0], "Jane Doe, Go developer")

	rr = ts.request(http.MethodGet, "/api/resume/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var history model.ResumeHistory
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history.Single, 1)
	assert.Equal(t, "jane.txt", history.Single[0].Filename)
	assert.Equal(t, "2024-01-01 12:00:00", history.Single[0].Timestamp)
}

func TestResumeAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name   string
		files  []upload
		status int
		code   string
	}{
		{"no file", nil, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"wrong type", []upload{{"resume", "jane.exe", "MZ"}}, http.StatusBadRequest, apierr.CodeInvalidFile},
		{"no text", []upload{{"resume", "jane.txt", "   "}}, http.StatusUnprocessableEntity, apierr.CodeCorruptedFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rr := ts.upload("/api/resume/analyze", tt.files, nil)
			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.code)
			assert.Empty(t, ts.app.Local.Prompts)
		})
	}
}

func TestResumeAnalyzeUnreadableReply(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Local.Response = "Error: Ollama is not running. Start it using `ollama serve`."

	rr := ts.upload("/api/resume/analyze", []upload{{"resume", "jane.txt", "Jane"}}, nil)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), apierr.CodeAIError)
}

func TestResumeAnalyzeRequiresMultipart(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/resume/analyze", map[string]string{"resume": "Jane"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), apierr.CodeInvalidRequest)
}

func TestResumeBatch(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Local.Response = `{"score": 70, "summary": "Matches role"}`

	rr := ts.upload("/api/resume/analyze_batch", []upload{
		{"resumes", "a.txt", "Alice, Go"},
		{"resumes", "b.txt", ""},
		{"resumes", "c.png", "image"},
	}, map[string]string{
		"role":             "Backend Developer",
		"main_language":    "Go",
		"candidate_type":   "fresher",
		"prefers_projects": "yes",
		"top_n":            "1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var ranked []model.RankedResume
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ranked))
	assert.Equal(t, []model.RankedResume{
		{Filename: "a.txt", Score: 70, Summary: "Matches role"},
		{Filename: "b.txt", Score: 0, Summary: "Error: File Corrupted"},
	}, ranked)

	require.Len(t, ts.app.Local.Prompts, 1)
	prompt := ts.app.Local.Prompts[0]
	assert.Contains(t, prompt, "TARGET ROLE: Backend Developer.")
	assert.Contains(t, prompt, "MAIN LANGUAGE: Go.")
	assert.Contains(t, prompt, "projects are MANDATORY")

	history := ts.app.Resume.History(t.Context())
	require.Len(t, history.Batch, 1)
	assert.Equal(t, 3, history.Batch[0].FilesProcessed)
	assert.Equal(t, 1, history.Batch[0].TopNRequested)
	assert.Len(t, history.Batch[0].Results, 1)
}

func TestResumeBatchRejectsBadFilters(t *testing.T) {
	tests := map[string]map[string]string{
		"top_n":          {"top_n": "ten"},
		"zero top_n":     {"top_n": "0"},
		"exp_years":      {"exp_years": "-2"},
		"candidate_type": {"candidate_type": "intern"},
	}
	for name, fields := range tests {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t)

			rr := ts.upload("/api/resume/analyze_batch", []upload{{"resumes", "a.txt", "Alice"}}, fields)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), apierr.CodeInvalidRequest)
		})
	}
}

func TestResumeClearHistory(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Local.Response = `{"ats_score": 50}`
	ts.upload("/api/resume/analyze", []upload{{"resume", "jane.txt", "Jane"}}, nil)

	rr := ts.request(http.MethodPost, "/api/resume/clear_history", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())

	rr = ts.request(http.MethodGet, "/api/resume/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"single":[],"batch":[]}`, strings.TrimSpace(rr.Body.String()))
}
