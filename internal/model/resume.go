package model

// MaxResumeHistory caps each resume history list
const MaxResumeHistory = 50

// DefaultRankTopN is how many ranked resumes a batch keeps in history when no limit is given
const DefaultRankTopN = 10

// Candidate types accepted by batch ranking
const (
	CandidateAny          = "any"
	CandidateFresher      = "fresher"
	CandidateProfessional = "professional"
)

// ResumeFile is an uploaded resume
type ResumeFile struct {
	Filename string
	Data     []byte
}

// ResumeReport is the ATS assessment of one resume
type ResumeReport struct {
	ATSScore     int      `json:"ats_score"`
	Skills       []string `json:"skills"`
	Summary      string   `json:"summary"`
	Improvements []string `json:"improvements"`
}

// RankFilters constrain how a batch of resumes is scored
type RankFilters struct {
	Role            string `json:"role"`
	MainLanguage    string `json:"main_language"`
	CandidateType   string `json:"candidate_type"`
	PrefersProjects bool   `json:"prefers_projects"`
	ExperienceYears int    `json:"exp_years"`
	TopN            int    `json:"top_n"`
}

// RankedResume is one resume's score within a batch
type RankedResume struct {
	Filename string `json:"filename"`
	Score    int    `json:"score"`
	Summary  string `json:"summary"`
}

// SingleResumeRecord is a history entry for one analysed resume
type SingleResumeRecord struct {
	Filename  string       `json:"filename"`
	Analysis  ResumeReport `json:"analysis"`
	Timestamp string       `json:"timestamp"`
}

// BatchResumeRecord is a history entry for one ranked batch; Results holds the top N only
type BatchResumeRecord struct {
	Type           string         `json:"type"`
	FilesProcessed int            `json:"files_processed"`
	TopNRequested  int            `json:"top_n_requested"`
	Results        []RankedResume `json:"results"`
	Timestamp      string         `json:"timestamp"`
}

// ResumeHistory holds past resume analyses, newest first
type ResumeHistory struct {
	Single []SingleResumeRecord `json:"single"`
	Batch  []BatchResumeRecord  `json:"batch"`
}

// NewResumeHistory returns an empty history
func NewResumeHistory() *ResumeHistory {
	return &ResumeHistory{Single: []SingleResumeRecord{}, Batch: []BatchResumeRecord{}}
}

// AddSingle puts r at the front of the single history
func (h *ResumeHistory) AddSingle(r SingleResumeRecord) {
	h.Single = prepend(h.Single, r)
}

// AddBatch puts r at the front of the batch history
func (h *ResumeHistory) AddBatch(r BatchResumeRecord) {
	h.Batch = prepend(h.Batch, r)
}

// Copy returns a copy that shares no slices with h
func (h *ResumeHistory) Copy() *ResumeHistory {
	c := NewResumeHistory()
	c.Single = append(c.Single, h.Single...)
	c.Batch = append(c.Batch, h.Batch...)
	return c
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	out = append(out, list...)
	if len(out) > MaxResumeHistory {
		out = out[:MaxResumeHistory]
	}
	return out
}
