package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_hazard_map/internal/config"
	"github.com/shenikar/road_hazard_map/internal/metrics"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=location.go -destination=mocks/mock_location.go -package=mocks

// LocationRepository - интерфейс хранилища последних координат
type LocationRepository interface {
	SaveLatestFix(ctx context.Context, sessionID string, fix *models.LocationFix) error
	GetLatestFix(ctx context.Context, sessionID string) (*models.LocationFix, error)
}

// LocationService - интерфейс сервиса координат устройства
type LocationService interface {
	PublishFix(ctx context.Context, sessionID string, fix *models.LocationFix) error
	Latest(ctx context.Context, sessionID string) (*models.LocationFix, bool)
}

type locationService struct {
	repo    LocationRepository
	logger  *logrus.Logger
	cfg     *config.Config
	clock   clockwork.Clock
	metrics *metrics.Metrics
}

// NewLocationService создает новый сервис координат
func NewLocationService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock, m *metrics.Metrics) LocationService {
	return &locationService{
		repo:    repo,
		logger:  logger,
		cfg:     cfg,
		clock:   clock,
		metrics: m,
	}
}

// PublishFix сохраняет последнюю известную координату устройства
func (s *locationService) PublishFix(ctx context.Context, sessionID string, fix *models.LocationFix) error {
	fix.ReportedAt = s.clock.Now().UTC()

	if err := s.repo.SaveLatestFix(ctx, sessionID, fix); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "location",
			"method":  "PublishFix",
		}).WithError(err).Error("Failed to save location fix")
		return fmt.Errorf("service: failed to save location fix: %w", err)
	}

	s.metrics.LocationUpdates.Inc()
	return nil
}

// Latest возвращает последнюю опубликованную координату сессии.
// Если координата еще не публиковалась или хранилище недоступно,
// возвращается координата по умолчанию и признак live=false:
// карта должна отрисоваться в любом случае.
func (s *locationService) Latest(ctx context.Context, sessionID string) (*models.LocationFix, bool) {
	fix, err := s.repo.GetLatestFix(ctx, sessionID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "location",
			"method":  "Latest",
		}).WithError(err).Warn("Failed to read latest location fix")
	}
	if fix == nil {
		return &models.LocationFix{
			Latitude:  s.cfg.DefaultLatitude,
			Longitude: s.cfg.DefaultLongitude,
		}, false
	}
	return fix, true
}
