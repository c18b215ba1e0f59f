package prompt

import (
	"fmt"
	"strings"

	"github.com/mcoot/mockify/internal/model"
)

// Resume text is cut to these many characters before it goes into a prompt
const (
	ResumeATSLimit  = 4000
	ResumeRankLimit = 3500
)

// ResumeATS asks for a general ATS assessment of one resume
func ResumeATS(text string) string {
	return fmt.Sprintf(`You are an expert ATS. Analyze this resume.
Reply with a single JSON object and nothing else, no markdown fences:
{"ats_score": <integer 0-100>, "skills": ["<skill>"], "summary": "<summary>", "improvements": ["<improvement>"]}

Resume:
%s
`, truncate(text, ResumeATSLimit))
}

// ResumeRank asks for a strict fit score of one resume against filters
func ResumeRank(text string, filters model.RankFilters) string {
	role := orDefault(filters.Role, "Any")
	lang := strings.TrimSpace(filters.MainLanguage)
	if strings.EqualFold(lang, "none") {
		lang = ""
	}

	rules := []string{
		fmt.Sprintf("1. TARGET ROLE: %s. CRITICAL: if the resume is for a different role (e.g. Marketing vs Developer), SCORE = 0.", role),
	}
	if lang != "" {
		rules = append(rules, fmt.Sprintf("2. MAIN LANGUAGE: %s. CRITICAL: the candidate MUST know %s. If %s is missing or weak, the maximum score is 40.", lang, lang, lang))
	}
	switch filters.CandidateType {
	case model.CandidateFresher:
		rules = append(rules, "3. TYPE: Fresher. Penalize if no projects, hackathons or internships are listed.")
		if filters.PrefersProjects {
			rules = append(rules, "   - HR PREFERENCE: projects are MANDATORY. A high score requires significant project work.")
		}
	case model.CandidateProfessional:
		rules = append(rules, fmt.Sprintf("3. TYPE: Professional. REQUIREMENT: about %d years of experience. Penalize heavily if experience is far below.", filters.ExperienceYears))
	}

	skill := lang
	if skill == "" {
		skill = "core skills"
	}

	return fmt.Sprintf(`Act as a STRICT technical recruiter. Rate this resume 0-100 based ONLY on these constraints:
%s

SCORING MATRIX:
- 90-100: perfect fit (matches role, strong %[2]s, exact experience or projects).
- 75-89: good fit (matches role, good %[2]s, minor experience gap).
- 50-74: average (matches role but weak %[2]s or lacking depth).
- below 50: weak (matches role but missing key skills like %[2]s).
- 0: wrong role, instant reject.

Reply with a single JSON object and nothing else:
{"score": <integer 0-100>, "summary": "<reason for score>"}

Resume text:
%[3]s
`, strings.Join(rules, "\n"), skill, truncate(text, ResumeRankLimit))
}

// truncate keeps the first limit runes of s
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
