package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ScreeningKey returns the cache key holding a screening's full state.
func (r *CacheKeyStruct) ScreeningKey(screeningID string) string {
	return fmt.Sprintf("screening:%s", screeningID)
}

// ChatLogQueue is the Redis list drained by the chat log worker.
func (r *CacheKeyStruct) ChatLogQueue() string {
	return "chat_log_queue"
}

var CacheKey = NewCacheKeyStruct()
