package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/service"
)

// Database описывает методы пула pgx, которые используют репозитории.
// Отдельный контракт позволяет подменять пул в тестах (pgxmock).
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

const (
	hazardListCacheKey = "hazards:list"
	// Срок жизни кэша списка: кэш также инвалидируется при каждой записи
	hazardListCacheTTL = 30 * time.Second
)

type HazardRepository struct {
	db          Database
	redisClient *redis.Client
}

func NewHazardRepository(db Database, redisClient *redis.Client) service.HazardRepository {
	return &HazardRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Insert добавляет новую запись об опасности в бд
func (r *HazardRepository) Insert(ctx context.Context, hazard *models.Hazard) error {
	query := `
		INSERT INTO hazards (id, hazard_type, latitude, longitude, source, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		hazard.ID,
		hazard.Type,
		hazard.Latitude,
		hazard.Longitude,
		hazard.Source,
		hazard.Note,
		hazard.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hazard: %w", err)
	}
	return nil
}

// List возвращает все записи, отсортированные по времени создания (новые первыми)
func (r *HazardRepository) List(ctx context.Context) ([]*models.Hazard, error) {
	query := `
		SELECT id, hazard_type, latitude, longitude, source, note, created_at
		FROM hazards
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazards: %w", err)
	}
	defer rows.Close()

	hazards := make([]*models.Hazard, 0)
	for rows.Next() {
		hazard := &models.Hazard{}
		err := rows.Scan(
			&hazard.ID,
			&hazard.Type,
			&hazard.Latitude,
			&hazard.Longitude,
			&hazard.Source,
			&hazard.Note,
			&hazard.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row: %w", err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hazards, nil
}

// Count возвращает количество сохраненных записей
func (r *HazardRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM hazards;`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count hazards: %w", err)
	}
	return count, nil
}

// GetListFromCache пытается получить список опасностей из Redis
func (r *HazardRepository) GetListFromCache(ctx context.Context) ([]*models.Hazard, error) {
	val, err := r.redisClient.Get(ctx, hazardListCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard list from cache: %w", err)
	}

	hazards := make([]*models.Hazard, 0)
	if err := json.Unmarshal(val, &hazards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hazard list from cache: %w", err)
	}
	return hazards, nil
}

// SetListCache сохраняет список опасностей в Redis
func (r *HazardRepository) SetListCache(ctx context.Context, hazards []*models.Hazard) error {
	val, err := json.Marshal(hazards)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard list for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hazardListCacheKey, val, hazardListCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard list in cache: %w", err)
	}
	return nil
}

// InvalidateListCache удаляет список опасностей из Redis кэша
func (r *HazardRepository) InvalidateListCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, hazardListCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hazard list cache: %w", err)
	}
	return nil
}
