// Package store persists evaluation history in Redis. Records are serialized
// as JSON into a capped list, newest first, so the dashboard can page through
// recent evaluations cheaply.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/models"
)

const (
	historyKey = "compliance:evaluations"

	// DefaultHistoryLimit caps how many records the history list retains.
	DefaultHistoryLimit = 1000
)

// Connect dials Redis with exponential backoff between attempts.
func Connect(ctx context.Context, addr, password string, maxRetries int, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			logger.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			time.Sleep(backoff)
		}

		logger.Info().Int("attempt", i+1).Int("max_retries", maxRetries).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}

// RedisStore keeps evaluation records in a capped Redis list.
type RedisStore struct {
	client *redis.Client
	limit  int64
	logger *zerolog.Logger
}

func NewRedisStore(client *redis.Client, limit int64, logger *zerolog.Logger) *RedisStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &RedisStore{
		client: client,
		limit:  limit,
		logger: logger,
	}
}

// Save pushes the record onto the history list and trims it to the cap.
func (s *RedisStore) Save(ctx context.Context, record models.EvaluationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal evaluation record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, historyKey, payload)
	pipe.LTrim(ctx, historyKey, 0, s.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store evaluation record: %w", err)
	}

	s.logger.Debug().Str("scenario_id", record.ScenarioID).Msg("evaluation record stored")
	return nil
}

// Recent returns up to n of the most recently stored records, newest first.
// Records that fail to decode are skipped rather than failing the page.
func (s *RedisStore) Recent(ctx context.Context, n int64) ([]models.EvaluationRecord, error) {
	if n <= 0 {
		n = 50
	}

	raw, err := s.client.LRange(ctx, historyKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read evaluation history: %w", err)
	}

	records := make([]models.EvaluationRecord, 0, len(raw))
	for _, item := range raw {
		var record models.EvaluationRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			s.logger.Warn().Err(err).Msg("skipping undecodable history record")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
