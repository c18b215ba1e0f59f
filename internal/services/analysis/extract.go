package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/mcoot/mockify/internal/model"
)

var errNoJSONObject = errors.New("no JSON object in model reply")

// ExtractAnalysis parses the JSON object spanning the first '{' to the last '}' of raw
// and lays it over the defaults field by field. A field that is missing or has the
// wrong shape keeps its default; the others are still applied. An error is returned
// only when raw holds no decodable object.
func ExtractAnalysis(raw string) (model.Analysis, error) {
	result := model.DefaultAnalysis()

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return result, errNoJSONObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return result, err
	}

	if v, ok := fields["score"]; ok {
		if score, err := parseScore(v); err == nil {
			result.Score = score
		}
	}
	mergeString(fields, "verdict", &result.Verdict)
	mergeString(fields, "summary", &result.Summary)
	mergeString(fields, "code_feedback", &result.CodeFeedback)
	mergeList(fields, "strengths", &result.Strengths)
	mergeList(fields, "weaknesses", &result.Weaknesses)
	mergeList(fields, "improvement_plan", &result.ImprovementPlan)
	return result, nil
}

func mergeString(fields map[string]json.RawMessage, key string, dst *string) {
	v, ok := fields[key]
	if !ok {
		return
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil && string(v) != "null" {
		*dst = s
	}
}

// mergeList accepts a list of strings or a single string, which becomes a one-item list
func mergeList(fields map[string]json.RawMessage, key string, dst *[]string) {
	v, ok := fields[key]
	if !ok || string(v) == "null" {
		return
	}
	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		*dst = list
		return
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil && strings.TrimSpace(s) != "" {
		*dst = []string{s}
	}
}

// parseScore accepts 72, 72.6 or "72" and clamps to 0..100
func parseScore(raw json.RawMessage) (int, error) {
	if string(raw) == "null" {
		return 0, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, err
		}
	}

	score := int(math.Round(f))
	return min(max(score, 0), 100), nil
}
