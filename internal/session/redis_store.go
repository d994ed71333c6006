package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs sessions with Redis so they survive process restarts
// and can be shared between instances. Each session is a Redis hash with
// one field per session key, so concurrent writers to different keys of
// the same session never clobber each other; values round-trip through
// JSON.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. A zero TTL keeps
// keys without expiry; a positive TTL slides forward on every write.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	fields, err := r.client.HGetAll(ctx, r.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil // not found
	}

	values := make(map[string]any, len(fields))
	for field, raw := range fields {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("session: failed to unmarshal %q: %w", field, err)
		}
		values[field] = v
	}

	return &Session{
		ID:     sessionID,
		Values: values,
	}, nil
}

func (r *RedisStore) Set(ctx context.Context, sessionID, key string, value any) error {
	if sessionID == "" {
		return fmt.Errorf("session: missing session id")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.key(sessionID), key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, r.key(sessionID), r.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
