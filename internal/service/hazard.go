package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_hazard_map/internal/metrics"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=hazard.go -destination=mocks/mock_hazard.go -package=mocks

// HazardRepository - интерфейс хранилища опасностей
type HazardRepository interface {
	Insert(ctx context.Context, hazard *models.Hazard) error
	List(ctx context.Context) ([]*models.Hazard, error)
	Count(ctx context.Context) (int, error)
	GetListFromCache(ctx context.Context) ([]*models.Hazard, error)
	SetListCache(ctx context.Context, hazards []*models.Hazard) error
	InvalidateListCache(ctx context.Context) error
}

// HazardService - интерфейс сервиса опасностей
type HazardService interface {
	Report(ctx context.Context, hazard *models.Hazard, reportedBy string) error
	List(ctx context.Context) ([]*models.Hazard, error)
	Count(ctx context.Context) (int, error)
}

type hazardService struct {
	repo      HazardRepository
	logger    *logrus.Logger
	publisher webhook.EventPublisher
	clock     clockwork.Clock
	metrics   *metrics.Metrics
}

// NewHazardService создает новый сервис опасностей
func NewHazardService(repo HazardRepository, logger *logrus.Logger, publisher webhook.EventPublisher, clock clockwork.Clock, m *metrics.Metrics) HazardService {
	return &hazardService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
	}
}

// Report регистрирует новую опасность: присваивает идентификатор и время
// создания, сохраняет запись и рассылает уведомление об изменении.
// Запись после сохранения не изменяется и не удаляется.
func (s *hazardService) Report(ctx context.Context, hazard *models.Hazard, reportedBy string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "Report",
	})

	hazard.ID = uuid.New()
	hazard.CreatedAt = s.clock.Now().UTC()
	if hazard.Source == "" {
		hazard.Source = models.SourceUser
	}

	if err := s.repo.Insert(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to insert hazard")
		return fmt.Errorf("service: failed to report hazard: %w", err)
	}

	s.metrics.HazardsReported.WithLabelValues(hazard.Source).Inc()

	if err := s.repo.InvalidateListCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard list cache")
	}

	event := webhook.HazardEvent{
		Hazard:     hazard,
		ReportedBy: reportedBy,
		Timestamp:  s.clock.Now().UTC(),
	}
	// Ошибка публикации не должна отменять уже сохраненную запись
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish hazard event")
	}

	log.WithFields(logrus.Fields{
		"hazard_id":   hazard.ID,
		"hazard_type": hazard.Type,
		"source":      hazard.Source,
	}).Info("Hazard reported")

	return nil
}

// List возвращает все опасности, отсортированные по времени создания
// от новых к старым. Сначала проверяется кеш, при промахе список
// читается из базы и кешируется.
func (s *hazardService) List(ctx context.Context) ([]*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "List",
	})

	cached, err := s.repo.GetListFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read hazard list from cache")
	}
	if cached != nil {
		return cached, nil
	}

	hazards, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list hazards")
		return nil, fmt.Errorf("service: failed to list hazards: %w", err)
	}

	if err := s.repo.SetListCache(ctx, hazards); err != nil {
		log.WithError(err).Warn("Failed to cache hazard list")
	}

	return hazards, nil
}

// Count возвращает количество зарегистрированных опасностей
func (s *hazardService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "hazard",
			"method":  "Count",
		}).WithError(err).Error("Failed to count hazards")
		return 0, fmt.Errorf("service: failed to count hazards: %w", err)
	}
	return count, nil
}
