package redis

import (
	"fmt"

	"github.com/mcoot/mockify/internal/model"
)

// Key prefix for all mockify data
const keyPrefix = "mockify"

// clientKey returns the Redis HASH key holding one client's storage items
func clientKey(id model.ClientID) string {
	return fmt.Sprintf("%s:client:%s", keyPrefix, id)
}

// statsKey returns the Redis key for the interview stats document
func statsKey() string {
	return fmt.Sprintf("%s:stats", keyPrefix)
}

// resumeHistoryKey returns the Redis key for the resume history document
func resumeHistoryKey() string {
	return fmt.Sprintf("%s:resume_history", keyPrefix)
}
