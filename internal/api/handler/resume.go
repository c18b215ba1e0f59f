package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcoot/mockify/internal/api/response"
	"github.com/mcoot/mockify/internal/model"
)

// maxUploadBytes bounds a whole resume upload request
const maxUploadBytes = 32 << 20

// ResumeAnalyzer scores uploaded resumes and keeps their history
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, file model.ResumeFile) (model.ResumeReport, error)
	Rank(ctx context.Context, files []model.ResumeFile, filters model.RankFilters) []model.RankedResume
	History(ctx context.Context) *model.ResumeHistory
	ClearHistory(ctx context.Context) error
}

// ResumeHandler handles resume endpoints
type ResumeHandler struct {
	analyzer ResumeAnalyzer
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(analyzer ResumeAnalyzer) *ResumeHandler {
	return &ResumeHandler{analyzer: analyzer}
}

// Analyze handles POST /api/resume/analyze with the file in the "resume" form field
func (h *ResumeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(w, r); err != nil {
		WriteError(w, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["resume"]
	if len(headers) == 0 {
		WriteError(w, NewInvalidRequestError("No file: upload a resume in the 'resume' field"))
		return
	}
	file, err := readUpload(headers[0])
	if err != nil {
		WriteError(w, err)
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), file)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}

// Rank handles POST /api/resume/analyze_batch with files in the "resumes" form field.
// Every ranked resume is returned; top_n only limits what history keeps.
func (h *ResumeHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(w, r); err != nil {
		WriteError(w, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	filters, err := rankFilters(r.MultipartForm)
	if err != nil {
		WriteError(w, err)
		return
	}

	headers := r.MultipartForm.File["resumes"]
	files := make([]model.ResumeFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh)
		if err != nil {
			WriteError(w, err)
			return
		}
		files = append(files, file)
	}

	response.JSON(w, http.StatusOK, h.analyzer.Rank(r.Context(), files, filters))
}

// History handles GET /api/resume/history
func (h *ResumeHandler) History(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.analyzer.History(r.Context()))
}

// ClearHistory handles POST /api/resume/clear_history
func (h *ResumeHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.analyzer.ClearHistory(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Status{Status: "success"})
}

func parseUpload(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewInvalidRequestError("upload is too large")
		}
		return NewInvalidRequestError("expected a multipart/form-data upload")
	}
	return nil
}

func readUpload(fh *multipart.FileHeader) (model.ResumeFile, error) {
	f, err := fh.Open()
	if err != nil {
		return model.ResumeFile{}, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.ResumeFile{}, err
	}
	return model.ResumeFile{Filename: fh.Filename, Data: data}, nil
}

// rankFilters reads the batch form fields. Missing fields take their defaults.
func rankFilters(form *multipart.Form) (model.RankFilters, error) {
	value := func(key, def string) string {
		if v := form.Value[key]; len(v) > 0 && strings.TrimSpace(v[0]) != "" {
			return strings.TrimSpace(v[0])
		}
		return def
	}

	filters := model.RankFilters{
		Role:            value("role", "Any"),
		MainLanguage:    value("main_language", "None"),
		CandidateType:   strings.ToLower(value("candidate_type", model.CandidateAny)),
		PrefersProjects: strings.EqualFold(value("prefers_projects", "no"), "yes"),
	}

	switch filters.CandidateType {
	case model.CandidateAny, model.CandidateFresher, model.CandidateProfessional:
	default:
		return filters, NewInvalidRequestError("candidate_type must be 'any', 'fresher' or 'professional'")
	}

	topN, err := strconv.Atoi(value("top_n", strconv.Itoa(model.DefaultRankTopN)))
	if err != nil || topN < 1 {
		return filters, NewInvalidRequestError("top_n must be a positive integer")
	}
	filters.TopN = topN

	years, err := strconv.Atoi(value("exp_years", "0"))
	if err != nil || years < 0 {
		return filters, NewInvalidRequestError("exp_years must be a non-negative integer")
	}
	filters.ExperienceYears = years

	return filters, nil
}
