package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avtoservice/admin-console/pkg/config"
)

const redisSessionKey = "autoservice:console:session"

// RedisRepository persists the session as a single Redis key
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *config.RedisConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test the connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRepository{client: client}, nil
}

// Load reads the persisted session. A missing key is an empty session.
func (r *RedisRepository) Load(ctx context.Context) (State, error) {
	data, err := r.client.Get(ctx, redisSessionKey).Bytes()
	if err == redis.Nil {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load session from redis: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to decode session from redis: %w", err)
	}
	return state, nil
}

// Save writes the session with no expiration; the session lives until
// explicit logout.
func (r *RedisRepository) Save(ctx context.Context, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, redisSessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

// Clear removes the persisted session
func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, redisSessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session in redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
