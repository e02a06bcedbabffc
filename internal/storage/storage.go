// Package storage provides the durable key-value store the engine
// persists through. The engine treats it as eventually-flushed storage
// with no transactional guarantee across keys: every aggregate is
// written whole under a single prefixed key.
package storage

import "context"

// Key prefixes under which engine state is persisted.
const (
	UserProgressPrefix = "user_progress_"
	LearningPathPrefix = "learning_path_"
	LLMLogPrefix       = "llm_log_"
)

// Store is the persistence collaborator consumed by the engine.
//
// Get returns (nil, nil) for a missing key; absence is data, not an error.
// ListKeys with an empty prefix returns every key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// UserProgressKey returns the storage key for a user's progress aggregate.
func UserProgressKey(userID string) string {
	return UserProgressPrefix + userID
}

// LearningPathKey returns the storage key for a user's generated path.
func LearningPathKey(userID string) string {
	return LearningPathPrefix + userID
}

// LLMLogKey returns the storage key for one LLM request log record.
func LLMLogKey(recordID string) string {
	return LLMLogPrefix + recordID
}
