package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

const dayKeyPrefix = "historicalnews:day:"

// RedisStore is an optional Store backend for running several replicas
// against a shared cache. Entries carry a TTL instead of the in-memory
// store's stale-forever lifetime.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *RedisStore) Get(key model.DateKey) ([]model.EventRecord, bool) {
	raw, err := s.client.Get(context.Background(), dayKeyPrefix+key.String()).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Error("redis get failed", "key", key.String(), "error", err)
		return nil, false
	}

	var events []model.EventRecord
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		slog.Error("redis entry unreadable", "key", key.String(), "error", err)
		return nil, false
	}
	if events == nil {
		events = []model.EventRecord{}
	}
	return events, true
}

func (s *RedisStore) Put(key model.DateKey, events []model.EventRecord) {
	raw, err := json.Marshal(events)
	if err != nil {
		slog.Error("redis entry not serializable", "key", key.String(), "error", err)
		return
	}

	err = s.client.SetNX(context.Background(), dayKeyPrefix+key.String(), raw, s.ttl).Err()
	if err != nil {
		slog.Error("redis put failed", "key", key.String(), "error", err)
	}
}

func (s *RedisStore) All() []model.EventRecord {
	ctx := context.Background()
	var all []model.EventRecord

	iter := s.client.Scan(ctx, 0, dayKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := s.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}
		var events []model.EventRecord
		if err := json.Unmarshal([]byte(raw), &events); err != nil {
			continue
		}
		all = append(all, events...)
	}
	if err := iter.Err(); err != nil {
		slog.Error("redis scan failed", "error", err)
	}
	return all
}

func (s *RedisStore) Len() int {
	ctx := context.Background()
	count := 0

	iter := s.client.Scan(ctx, 0, dayKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}
