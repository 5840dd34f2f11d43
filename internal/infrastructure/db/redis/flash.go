package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Notices the visitor never came back for expire on their own.
const flashTTL = 10 * time.Minute

// FlashStore holds one-shot notices in Redis lists, one list per visitor.
// Key format: flash:<visitor_id>
type FlashStore struct {
	client *redis.Client
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Add appends a notice to the visitor's pending list.
func (s *FlashStore) Add(ctx context.Context, key, message string) error {
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.key(key), message)
	pipe.Expire(ctx, s.key(key), flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash add: %w", err)
	}
	return nil
}

// Pop returns the visitor's pending notices and deletes them atomically.
func (s *FlashStore) Pop(ctx context.Context, key string) ([]string, error) {
	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, s.key(key), 0, -1)
	pipe.Del(ctx, s.key(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("flash pop: %w", err)
	}

	messages := rangeCmd.Val()
	if len(messages) == 0 {
		return nil, nil
	}
	return messages, nil
}

func (s *FlashStore) key(visitorID string) string {
	return fmt.Sprintf("flash:%s", visitorID)
}
