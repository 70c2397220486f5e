package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_hazard_map/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "hazard_events"
)

// HazardEvent - уведомление об изменении коллекции опасностей.
// Публикуется при каждом успешном создании записи, чтобы подписчики
// (карта, профиль) перечитали список.
type HazardEvent struct {
	Hazard     *models.Hazard `json:"hazard"`
	ReportedBy string         `json:"reported_by"`
	Timestamp  time.Time      `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации уведомлений об изменениях
type EventPublisher interface {
	Publish(ctx context.Context, event HazardEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event HazardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish hazard event to Redis: %w", err)
	}
	return nil
}
