package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/api"
	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/metrics"
	"github.com/casewise/compliance-agent/internal/rules"
	"github.com/casewise/compliance-agent/internal/scenario"
	"github.com/casewise/compliance-agent/internal/store"
)

type Config struct {
	Port          string
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	HistoryLimit  int64
}

type Dependencies struct {
	Executor   *executor.Executor
	Repository *scenario.Repository
	History    api.HistorySource
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("COMPLIANCE_API_PORT", "18082"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		HistoryLimit:  getEnvInt64("HISTORY_LIMIT", store.DefaultHistoryLimit),
	}
}

// Wire assembles the evaluation pipeline: scenario repository (built-ins plus
// any custom YAML scenarios), rule engine, metrics engine, optional Redis
// history store, and the executor tying them together.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	custom, err := scenario.LoadCustomScenarios()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom scenarios: %w", err)
	}

	repo, err := scenario.NewRepository(custom...)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenario repository: %w", err)
	}

	if len(custom) > 0 {
		logger.Info().Int("custom_scenarios", len(custom)).Msg("custom scenarios loaded")
	}

	var recordStore executor.RecordStore
	var history api.HistorySource
	if cfg.RedisAddr != "" {
		client, err := store.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisStore := store.NewRedisStore(client, cfg.HistoryLimit, logger)
		recordStore = redisStore
		history = redisStore
	}

	exec := executor.NewExecutor(repo, rules.NewEngine(), metrics.NewEngine(), recordStore, logger)

	return &Dependencies{
		Executor:   exec,
		Repository: repo,
		History:    history,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}
