// Package prompt turns a user prompt and interview context into the text sent to a model.
package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mcoot/mockify/internal/model"
)

// Prompt types
const (
	TypeChat              = "chat"
	TypeCodeAnalysis      = "code_analysis"
	TypeReport            = "report"
	TypeInterviewQuestion = "interview_question"
)

// Context defaults
const (
	DefaultCompany    = "Tech Company"
	DefaultRole       = "Candidate"
	DefaultRound      = "General"
	DefaultDifficulty = "Medium"
	DefaultPersona    = "Normal"
)

var (
	serviceCompanies = []string{"TCS", "Infosys", "Wipro", "HCL Tech"}
	productCompanies = []string{"Google", "Amazon", "Meta", "Netflix"}
)

// WithDefaults fills empty context fields
func WithDefaults(ictx model.InterviewContext) model.InterviewContext {
	if ictx.Company == "" {
		ictx.Company = DefaultCompany
	}
	if ictx.Role == "" {
		ictx.Role = DefaultRole
	}
	if ictx.Round == "" {
		ictx.Round = DefaultRound
	}
	if ictx.Difficulty == "" {
		ictx.Difficulty = DefaultDifficulty
	}
	if ictx.Persona == "" {
		ictx.Persona = DefaultPersona
	}
	return ictx
}

// Build renders the prompt for promptType. Unknown types return prompt unchanged.
func Build(prompt, promptType string, ictx model.InterviewContext) string {
	ictx = WithDefaults(ictx)

	switch promptType {
	case TypeChat:
		return buildChat(prompt, ictx)
	case TypeCodeAnalysis:
		return buildCodeAnalysis(prompt, ictx)
	case TypeReport:
		return buildReport(prompt, ictx)
	case TypeInterviewQuestion:
		return buildInterviewQuestion(ictx)
	default:
		return prompt
	}
}

func companyStyle(company string) string {
	switch {
	case slices.Contains(serviceCompanies, company):
		return `COMPANY STYLE (service-based):
- Stress fundamentals: OOP, SQL and basic coding logic.
- Ask about relocation, shift work and the technologies used on past projects.
- Weigh professionalism and communication heavily.`
	case slices.Contains(productCompanies, company):
		return `COMPANY STYLE (product-based):
- Stress problem solving, optimisation and depth of technical understanding.
- Expect autonomy and engineering excellence in answers.`
	default:
		return ""
	}
}

func roundContext(round string) string {
	switch round {
	case "HR Round":
		return `ROUND: HR Round
GOAL: judge culture fit, stability and motivation.
Ask these one at a time, starting with the first:
1. "Tell me about yourself."
2. "Why do you want to join this company?"
3. "Why are you leaving your current job?" (experienced candidates only)
4. "What are your strengths and weaknesses?"
5. "How do you handle stress?"
6. "Where do you see yourself in five years?"
Freshers: ask about internships, final year projects and academic challenges.
Experienced: ask about challenges in previous roles and why they are switching.`
	case "Behavioral":
		return `ROUND: Behavioral
GOAL: judge soft skills with the STAR method, in a friendly tone.
1. "Tell me about a time you faced a tough decision."
2. "Have you ever had to sell an idea to a coworker?"
3. "Tell me about a conflict you resolved."
4. "Describe a time you failed and how you handled it."
Always ask what the result of their actions was.`
	case "Phone Screen":
		return `ROUND: Phone Screen
GOAL: a quick five minute background check.
Verify experience and tech stack verbally, check basic communication,
and ask about salary expectations and notice period.`
	case "System Design":
		return `ROUND: System Design
GOAL: discuss scalable architecture.
Topics: load balancers, caching, sharding, the CAP theorem.
Ask them to design a concrete system such as a URL shortener or a chat app.`
	case "Technical Coding", "Technical II":
		return `ROUND: Technical Coding (C++ DSA focus)
GOAL: judge algorithmic thinking and C++ proficiency.
Ask data structures and algorithms questions only, expect C++ solutions,
and ask for time and space complexity.`
	default:
		return ""
	}
}

func personaInstruction(persona string) string {
	instruction := fmt.Sprintf("You are a %s interviewer named Rohan.", persona)
	switch persona {
	case "Strict":
		instruction += " Be formal and skeptical, and drill into details."
	case "Friendly":
		instruction += " Be warm, encouraging and professional."
	}
	return instruction
}

func buildChat(prompt string, ictx model.InterviewContext) string {
	var b strings.Builder
	b.WriteString(personaInstruction(ictx.Persona))
	fmt.Fprintf(&b, "\nYou are running a simulated interview for %s.\n", ictx.Company)
	fmt.Fprintf(&b, "Role: %s | Round: %s | Difficulty: %s\n\n", ictx.Role, ictx.Round, ictx.Difficulty)

	if style := companyStyle(ictx.Company); style != "" {
		b.WriteString(style)
		b.WriteString("\n\n")
	}
	if rc := roundContext(ictx.Round); rc != "" {
		b.WriteString(rc)
		b.WriteString("\n\n")
	}

	b.WriteString(`RULES:
1. Never ask for a resume or claim to have read one. This is a spoken conversation; ask them to describe their experience.
2. If the candidate drifts off topic, bring them back to the interview.
3. Ask exactly one question at a time.
4. Do not narrate actions with asterisks. Speak naturally.
5. If you have not asked yet, find out whether they are a fresher or experienced and adapt.
6. When the candidate mentions a project without its tech stack, ask what stack they used.

Conversation so far:
`)
	b.WriteString(prompt)
	b.WriteString("\n\ninterviewer:\n")
	return b.String()
}

func buildCodeAnalysis(prompt string, ictx model.InterviewContext) string {
	return fmt.Sprintf(`You are a senior technical interviewer at %s.
The candidate has submitted code for a %s problem.

Role: %s
Difficulty: %s

Submitted code:
%s

Tasks:
1. Assess correctness and efficiency, including time and space complexity.
2. Score this section 0 if the code is wrong or poor.
3. Ask ONE follow-up question about their implementation.
`, ictx.Company, ictx.Round, ictx.Role, ictx.Difficulty, prompt)
}

func buildReport(prompt string, ictx model.InterviewContext) string {
	return fmt.Sprintf(`You are a blunt, honest senior technical recruiter.
Assess the transcript below for a %s interview at %s.

TRANSCRIPT START
%s
TRANSCRIPT END

Only judge what the candidate actually said in the transcript.
If the candidate said nothing, only greeted or stopped, or the transcript is empty:
- score is 0
- verdict is "Better Luck Next Time"
- summary is "The candidate did not participate in the interview or ended the session immediately."
- strengths is ["The AI did not see any KEY STRENGTHS in this interview."]
Never invent strengths.

Scoring when the candidate answered:
- 0-20 "Better Luck Next Time": wrong answers, silence or no grasp of basics.
- 21-40 "Moderate": vague or buzzword answers that are nearly right. List 2-3 genuine strengths.
- 41-80 "Good": correct but generic answers. List 2-3 genuine strengths.
- 81-100 "Excellent": clear, optimised, deep answers. List 2-3 strong strengths.

Be friendly but do not sugarcoat. Say exactly why an answer fell short.

Reply with a single JSON object and nothing else, no markdown fences:
{
    "score": <integer 0-100>,
    "verdict": "<verdict>",
    "summary": "<honest assessment>",
    "strengths": ["<strength>"],
    "weaknesses": ["<weakness>"],
    "improvement_plan": ["<step>"],
    "code_feedback": "<code critique or N/A>"
}
`, ictx.Role, ictx.Company, prompt)
}

func buildInterviewQuestion(ictx model.InterviewContext) string {
	return fmt.Sprintf(`%s
You are opening a %s difficulty %s interview for a %s position at %s.
Ask the candidate exactly one opening interview question.
Reply with the question only, no preamble.
`, personaInstruction(ictx.Persona), ictx.Difficulty, ictx.Round, ictx.Role, ictx.Company)
}
