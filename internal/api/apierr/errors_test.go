package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/model"
)

func TestWriteErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid mode", fmt.Errorf("wrapped: %w", model.ErrInvalidAIMode), http.StatusBadRequest, CodeInvalidAIMode},
		{"stats", model.ErrStatsNotFound, http.StatusNotFound, CodeStatsNotFound},
		{"item", model.ErrItemNotFound, http.StatusNotFound, CodeNotFound},
		{"resume type", model.ErrUnsupportedResume, http.StatusBadRequest, CodeInvalidFile},
		{"resume text", fmt.Errorf("%w: bad xref", model.ErrUnreadableResume), http.StatusUnprocessableEntity, CodeCorruptedFile},
		{"resume reply", model.ErrResumeAnalysisFailed, http.StatusBadGateway, CodeAIError},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("redis: connection refused"))

	assert.NotContains(t, rec.Body.String(), "redis")
}
