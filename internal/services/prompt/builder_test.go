package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/mockify/internal/model"
)

func TestUnknownTypeReturnsPromptUnchanged(t *testing.T) {
	assert.Equal(t, "raw text", Build("raw text", "something_else", model.InterviewContext{}))
	assert.Equal(t, "raw text", Build("raw text", "", model.InterviewContext{Company: "Google"}))
}

func TestChatUsesDefaults(t *testing.T) {
	out := Build("User: hi", TypeChat, model.InterviewContext{})

	assert.Contains(t, out, "You are a Normal interviewer named Rohan.")
	assert.Contains(t, out, "simulated interview for Tech Company")
	assert.Contains(t, out, "Role: Candidate | Round: General | Difficulty: Medium")
	assert.Contains(t, out, "User: hi")
	assert.NotContains(t, out, "COMPANY STYLE")
	assert.NotContains(t, out, "ROUND:")
}

func TestChatCompanyStyle(t *testing.T) {
	service := Build("", TypeChat, model.InterviewContext{Company: "Infosys"})
	assert.Contains(t, service, "COMPANY STYLE (service-based)")

	product := Build("", TypeChat, model.InterviewContext{Company: "Netflix"})
	assert.Contains(t, product, "COMPANY STYLE (product-based)")
}

func TestChatRoundContext(t *testing.T) {
	tests := map[string]string{
		"HR Round":         "ROUND: HR Round",
		"Behavioral":       "ROUND: Behavioral",
		"Phone Screen":     "ROUND: Phone Screen",
		"System Design":    "ROUND: System Design",
		"Technical Coding": "ROUND: Technical Coding",
		"Technical II":     "ROUND: Technical Coding",
	}
	for round, want := range tests {
		t.Run(round, func(t *testing.T) {
			assert.Contains(t, Build("", TypeChat, model.InterviewContext{Round: round}), want)
		})
	}
}

func TestChatPersona(t *testing.T) {
	strict := Build("", TypeChat, model.InterviewContext{Persona: "Strict"})
	assert.Contains(t, strict, "You are a Strict interviewer named Rohan. Be formal")

	friendly := Build("", TypeChat, model.InterviewContext{Persona: "Friendly"})
	assert.Contains(t, friendly, "You are a Friendly interviewer named Rohan. Be warm")
}

func TestCodeAnalysis(t *testing.T) {
	out := Build("int main() {}", TypeCodeAnalysis, model.InterviewContext{Company: "Amazon", Round: "Technical II"})

	assert.Contains(t, out, "senior technical interviewer at Amazon")
	assert.Contains(t, out, "code for a Technical II problem")
	assert.Contains(t, out, "int main() {}")
}

func TestReport(t *testing.T) {
	out := Build("User: I would use a hash map", TypeReport, model.InterviewContext{Role: "SRE", Company: "Meta"})

	assert.Contains(t, out, "for a SRE interview at Meta")
	assert.Contains(t, out, "TRANSCRIPT START\nUser: I would use a hash map\nTRANSCRIPT END")
	assert.Contains(t, out, `"improvement_plan"`)
}

func TestInterviewQuestion(t *testing.T) {
	out := Build("", TypeInterviewQuestion, model.InterviewContext{Company: "Google", Role: "Backend Engineer", Difficulty: "Hard"})

	assert.Contains(t, out, "Hard difficulty General interview for a Backend Engineer position at Google")
	assert.Contains(t, out, "exactly one opening interview question")
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	got := WithDefaults(model.InterviewContext{Company: "Wipro", Persona: "Strict"})

	assert.Equal(t, model.InterviewContext{
		Company:    "Wipro",
		Role:       "Candidate",
		Round:      "General",
		Difficulty: "Medium",
		Persona:    "Strict",
	}, got)
}
