package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// InstructionQuestionsKey returns the cache key for an instruction's stored test questions
func (r *CacheKeyStruct) InstructionQuestionsKey(instructionID int64) string {
	return fmt.Sprintf("instruction:%d:test_questions", instructionID)
}

// StatsKey returns the cache key for the dashboard statistics snapshot
func (r *CacheKeyStruct) StatsKey() string {
	return "stats:summary"
}

// ActivityFeedChannel returns the Redis PubSub channel name for live activity entries
func (r *CacheKeyStruct) ActivityFeedChannel() string {
	return "activity:feed"
}

var CacheKey = NewCacheKeyStruct()
