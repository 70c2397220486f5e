package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/service"
)

const locationFixKeyPrefix = "location:latest:"

// LocationRepository хранит только последнюю координату сеанса.
// История перемещений не сохраняется.
type LocationRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewLocationRepository(redisClient *redis.Client, ttl time.Duration) service.LocationRepository {
	return &LocationRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveLatestFix сохраняет последнюю координату сеанса в Redis с TTL свежести
func (r *LocationRepository) SaveLatestFix(ctx context.Context, sessionID string, fix *models.LocationFix) error {
	key := locationFixKeyPrefix + sessionID
	val, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal location fix: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save location fix: %w", err)
	}
	return nil
}

// GetLatestFix возвращает последнюю координату сеанса или nil, если свежей фиксации нет
func (r *LocationRepository) GetLatestFix(ctx context.Context, sessionID string) (*models.LocationFix, error) {
	key := locationFixKeyPrefix + sessionID
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location fix: %w", err)
	}

	fix := &models.LocationFix{}
	if err := json.Unmarshal(val, fix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location fix: %w", err)
	}
	return fix, nil
}
