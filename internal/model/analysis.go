package model

// Analysis is the scored interview report
type Analysis struct {
	Score           int      `json:"score"`
	Verdict         string   `json:"verdict"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	ImprovementPlan []string `json:"improvement_plan"`
	CodeFeedback    string   `json:"code_feedback"`
}

// DefaultAnalysis is returned when the model reply cannot be parsed
func DefaultAnalysis() Analysis {
	return Analysis{
		Score:           0,
		Verdict:         "Better Luck Next Time",
		Summary:         "Unable to parse AI response.",
		Strengths:       []string{"None observed"},
		Weaknesses:      []string{"Parsing failed"},
		ImprovementPlan: []string{"Retry interview"},
		CodeFeedback:    "N/A",
	}
}
