package factory

import (
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage/memory"
	"github.com/mcoot/mockify/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Fakes for test control
	FixedClock *clock.Fixed
	Local      *llm.Static
	Cloud      *llm.Static
}

// NewTestApp creates an App with memory storage, a fixed clock and scripted generators.
// Local mode is the default.
func NewTestApp() *TestApp {
	store := memory.New()
	fixedClock := clock.NewFixed(testutil.ReferenceTime)
	local := &llm.Static{Label: llm.OllamaName, Response: "Tell me about yourself."}
	cloud := &llm.Static{Label: llm.GeminiName, Response: "Why do you want to join us?"}

	generators := map[model.AIMode]llm.Generator{
		model.AIModeLocal: local,
		model.AIModeCloud: cloud,
	}
	app := newWithDependencies(store, fixedClock, generators, model.AIModeLocal, testutil.NopLogger())

	return &TestApp{
		App:        app,
		FixedClock: fixedClock,
		Local:      local,
		Cloud:      cloud,
	}
}

// MemoryStorage returns the memory storage backing the test app
func (t *TestApp) MemoryStorage() *memory.Storage {
	return t.App.Storage.(*memory.Storage)
}
