package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const MealPlanTTL = 24 * time.Hour

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses url, pings the server and returns a client that keeps
// meal plans for MealPlanTTL.
func NewRedisClient(ctx context.Context, url string) (*RedisClient, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ttl: MealPlanTTL}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func mealPlanKey(userID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("mealplan:%s:%s", userID, date.Format("2006-01-02"))
}

type storedPlan struct {
	Plan     *models.MealPlan `json:"plan"`
	StoredAt int64            `json:"stored_at"`
}

func (r *RedisClient) StoreMealPlan(ctx context.Context, userID uuid.UUID, date time.Time, plan *models.MealPlan) error {
	jsonData, err := json.Marshal(storedPlan{Plan: plan, StoredAt: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("failed to marshal meal plan: %w", err)
	}

	if err := r.client.Set(ctx, mealPlanKey(userID, date), jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store meal plan in Redis: %w", err)
	}
	return nil
}

// GetMealPlan reports false when no plan is cached for the user and date.
func (r *RedisClient) GetMealPlan(ctx context.Context, userID uuid.UUID, date time.Time) (*models.MealPlan, bool, error) {
	data, err := r.client.Get(ctx, mealPlanKey(userID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get meal plan from Redis: %w", err)
	}

	var stored storedPlan
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal meal plan: %w", err)
	}
	if stored.Plan == nil {
		return nil, false, nil
	}
	return stored.Plan, true, nil
}

func (r *RedisClient) DeleteMealPlan(ctx context.Context, userID uuid.UUID, date time.Time) error {
	return r.client.Del(ctx, mealPlanKey(userID, date)).Err()
}

// Status reports pool counters for the health endpoint.
func (r *RedisClient) Status(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
