package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/squadstats/wpi-api/internal/models"
)

// RedisClient is the subset of *redis.Client the store uses
type RedisClient interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore keeps the player table as a list of JSON records under one key
type RedisStore struct {
	client RedisClient
	key    string
	close  func() error
}

func NewRedisStore(client RedisClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// OpenRedis connects using a redis:// URL
func OpenRedis(ctx context.Context, url, table string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	s := NewRedisStore(client, RedisKey(table))
	s.close = client.Close
	return s, nil
}

// RedisKey is the list key holding a table
func RedisKey(table string) string {
	return "wpi:" + table
}

func (s *RedisStore) LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", s.key, err)
	}
	records := make([]models.PlayerRecord, len(items))
	for i, item := range items {
		if err := json.Unmarshal([]byte(item), &records[i]); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", s.key, i, err)
		}
	}
	return records, nil
}

// SavePlayers replaces the list in a MULTI/EXEC block
func (s *RedisStore) SavePlayers(ctx context.Context, records []models.PlayerRecord) error {
	items := make([]interface{}, len(records))
	for i := range records {
		data, err := json.Marshal(&records[i])
		if err != nil {
			return err
		}
		items[i] = string(data)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(items) > 0 {
			pipe.RPush(ctx, s.key, items...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}
