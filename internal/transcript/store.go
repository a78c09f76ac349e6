// Package transcript records the per-session chat history in Redis so the
// chat surface can replay it. Recording is best-effort and disabled when no
// Redis client is configured.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat_transcript:"

// Message is one line of the conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Body      string    `json:"body"`
	Phase     string    `json:"phase,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Store keeps one capped Redis list per session.
type Store struct {
	redis       *redis.Client
	ttl         time.Duration
	maxMessages int64
}

// NewStore creates a transcript store. A nil client yields a nil store; all
// methods are nil-safe so callers don't have to branch.
func NewStore(client *redis.Client, ttl time.Duration, maxMessages int64) *Store {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	if maxMessages <= 0 {
		maxMessages = 250
	}
	return &Store{
		redis:       client,
		ttl:         ttl,
		maxMessages: maxMessages,
	}
}

// Append records one message at the end of the session's transcript.
func (s *Store) Append(ctx context.Context, sessionID string, msg Message) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if sessionID == "" {
		return errors.New("transcript: sessionID required")
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("transcript: marshal message: %w", err)
	}

	key := transcriptKey(sessionID)
	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.ttl)
	pipe.LTrim(ctx, key, -s.maxMessages, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("transcript: append message: %w", err)
	}
	return nil
}

// List returns the most recent messages in chronological order.
func (s *Store) List(ctx context.Context, sessionID string, limit int64) ([]Message, error) {
	if s == nil || s.redis == nil {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if sessionID == "" {
		return nil, errors.New("transcript: sessionID required")
	}

	start := int64(0)
	if limit > 0 {
		start = -limit
	}

	raw, err := s.redis.LRange(ctx, transcriptKey(sessionID), start, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("transcript: list messages: %w", err)
	}

	out := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			// skip corrupt entries instead of failing the whole read
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func transcriptKey(sessionID string) string {
	return keyPrefix + sessionID
}
