package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Client storage operations

func (s *Storage) GetItem(ctx context.Context, clientID model.ClientID, key string) (string, error) {
	value, err := s.client.HGet(ctx, clientKey(clientID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrItemNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Storage) SetItem(ctx context.Context, clientID model.ClientID, key, value string) error {
	hashKey := clientKey(clientID)

	if s.cfg.ClientTTL <= 0 {
		return s.client.HSet(ctx, hashKey, key, value).Err()
	}

	// Refresh the namespace TTL together with the write
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hashKey, key, value)
	pipe.Expire(ctx, hashKey, s.cfg.ClientTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RemoveItem(ctx context.Context, clientID model.ClientID, key string) error {
	return s.client.HDel(ctx, clientKey(clientID), key).Err()
}

// Stats operations

func (s *Storage) GetStats(ctx context.Context) (*model.InterviewStats, error) {
	data, err := s.client.Get(ctx, statsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatsNotFound
		}
		return nil, err
	}

	var stats model.InterviewStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	if stats.History == nil {
		stats.History = []model.HistoryEntry{}
	}
	return &stats, nil
}

func (s *Storage) SaveStats(ctx context.Context, stats *model.InterviewStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, statsKey(), data, 0).Err()
}

// Resume history operations

func (s *Storage) GetResumeHistory(ctx context.Context) (*model.ResumeHistory, error) {
	data, err := s.client.Get(ctx, resumeHistoryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResumeHistoryNotFound
		}
		return nil, err
	}

	history := model.NewResumeHistory()
	if err := json.Unmarshal(data, history); err != nil {
		return nil, err
	}
	return history.Copy(), nil
}

func (s *Storage) SaveResumeHistory(ctx context.Context, history *model.ResumeHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, resumeHistoryKey(), data, 0).Err()
}
