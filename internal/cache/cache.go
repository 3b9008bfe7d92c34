package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store é um cache JSON fino sobre Redis, usado para servir o snapshot de
// disponibilidade. Quando o Redis não está configurado o Store é nil e todas
// as operações viram no-op — o cache é só atalho, nunca fonte de verdade.
type Store struct {
	rdb *redis.Client
}

func New(redisURL string) *Store {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache disabled, invalid REDIS_URL: %v", err)
		return nil
	}

	return &Store{rdb: redis.NewClient(opts)}
}

func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if s == nil {
		return false
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if s == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}

func (s *Store) Del(ctx context.Context, key string) {
	if s == nil {
		return
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("cache del failed for %s: %v", key, err)
	}
}
