package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces draft keys inside a shared Redis database.
const defaultKeyPrefix = "draft:"

// RedisStore implements Store on an existing Redis client. Expiration rides
// on Redis key TTLs, so DeleteExpired is a no-op.
type RedisStore struct {
	db     redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the key prefix used for draft keys.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed draft store on an existing client.
// The caller owns the client's lifecycle.
func NewRedisStore(redisClient redis.UniversalClient, opts ...RedisOption) *RedisStore {
	store := &RedisStore{
		db:     redisClient,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save creates or overwrites the draft under its token with a TTL matching
// the draft's retention window.
func (s *RedisStore) Save(ctx context.Context, draft *Draft) error {
	if draft == nil || draft.Token == "" {
		return ErrInvalidDraft
	}

	ttl := time.Until(draft.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", draft.Token, err)
	}

	return s.db.Set(ctx, s.key(draft.Token), payload, ttl).Err()
}

// Get retrieves a draft by token.
func (s *RedisStore) Get(ctx context.Context, token string) (*Draft, error) {
	payload, err := s.db.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var draft Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft %s: %w", token, err)
	}

	// The key TTL should have evicted this already; clock skew between the
	// application and Redis can leave a brief gap.
	if draft.IsExpired() {
		_ = s.db.Del(ctx, s.key(token)).Err()
		return nil, ErrExpired
	}

	return &draft, nil
}

// Delete removes a draft by token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.db.Del(ctx, s.key(token)).Err()
}

// DeleteExpired is a no-op; Redis evicts expired keys itself.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
