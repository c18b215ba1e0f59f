package resume

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcoot/mockify/internal/model"
)

// replyFields decodes the JSON object spanning the first '{' to the last '}' of raw
func replyFields(raw string) (map[string]json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, model.ErrResumeAnalysisFailed
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrResumeAnalysisFailed, err)
	}
	return fields, nil
}

// parseReport reads an ATS report. Fields with the wrong shape are left empty.
func parseReport(raw string) (model.ResumeReport, error) {
	fields, err := replyFields(raw)
	if err != nil {
		return model.ResumeReport{}, err
	}
	return model.ResumeReport{
		ATSScore:     score(fields["ats_score"]),
		Skills:       list(fields["skills"]),
		Summary:      text(fields["summary"]),
		Improvements: list(fields["improvements"]),
	}, nil
}

// parseRank reads a batch score and its reason
func parseRank(raw string) (int, string, error) {
	fields, err := replyFields(raw)
	if err != nil {
		return 0, "", err
	}
	return score(fields["score"]), text(fields["summary"]), nil
}

// score accepts 72, 72.6 or "72", clamps to 0..100 and treats anything else as 0
func score(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0
		}
	}
	return min(max(int(math.Round(f)), 0), 100)
}

func text(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// list accepts a list of strings or a single string
func list(raw json.RawMessage) []string {
	var items []string
	if len(raw) > 0 && json.Unmarshal(raw, &items) == nil && items != nil {
		return items
	}
	if s := text(raw); strings.TrimSpace(s) != "" {
		return []string{s}
	}
	return []string{}
}
