package model

import "errors"

// Common errors used across the application
var (
	// Client storage errors
	ErrItemNotFound = errors.New("item not found")

	// Session errors
	ErrCorruptSession = errors.New("stored session is not valid JSON")

	// Stats errors
	ErrStatsNotFound = errors.New("interview stats not found")

	// AI errors
	ErrInvalidAIMode = errors.New("invalid AI mode")

	// Resume errors
	ErrResumeHistoryNotFound = errors.New("resume history not found")
	ErrUnsupportedResume     = errors.New("unsupported resume file type")
	ErrUnreadableResume      = errors.New("no text could be extracted from resume")
	ErrResumeAnalysisFailed  = errors.New("model reply is not a resume report")
)
