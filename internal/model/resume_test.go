package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeHistoryNewestFirst(t *testing.T) {
	h := NewResumeHistory()

	h.AddSingle(SingleResumeRecord{Filename: "a.txt"})
	h.AddSingle(SingleResumeRecord{Filename: "b.txt"})
	h.AddBatch(BatchResumeRecord{FilesProcessed: 3})

	assert.Equal(t, "b.txt", h.Single[0].Filename)
	assert.Equal(t, "a.txt", h.Single[1].Filename)
	assert.Len(t, h.Batch, 1)
}

func TestResumeHistoryCapped(t *testing.T) {
	h := NewResumeHistory()

	for i := 0; i < MaxResumeHistory+3; i++ {
		h.AddBatch(BatchResumeRecord{FilesProcessed: i})
	}

	assert.Len(t, h.Batch, MaxResumeHistory)
	assert.Equal(t, MaxResumeHistory+2, h.Batch[0].FilesProcessed)
}

func TestResumeHistoryCopyIsIndependent(t *testing.T) {
	h := NewResumeHistory()
	h.AddSingle(SingleResumeRecord{Filename: "a.txt"})

	c := h.Copy()
	c.Single[0].Filename = "changed.txt"
	c.AddSingle(SingleResumeRecord{Filename: "b.txt"})

	assert.Equal(t, "a.txt", h.Single[0].Filename)
	assert.Len(t, h.Single, 1)
}
