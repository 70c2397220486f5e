package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/road_hazard_map/internal/metrics"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/service/mocks"
	"github.com/shenikar/road_hazard_map/internal/webhook"
	webhook_mocks "github.com/shenikar/road_hazard_map/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// newTestHazardService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestHazardService(t *testing.T) (*hazardService, *mocks.MockHazardRepository, *webhook_mocks.MockEventPublisher, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHazardRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := clockwork.NewFakeClockAt(testNow)
	m := metrics.NewMetrics(prometheus.NewRegistry())

	service := NewHazardService(repoMock, logger, publisherMock, clock, m)
	return service.(*hazardService), repoMock, publisherMock, clock
}

func TestReportHazard_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock, _ := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{
		Type:      models.TypePothole,
		Latitude:  32.5293,
		Longitude: -92.6379,
		Note:      "Глубокая яма у перекрестка",
	}

	// Ожидания
	repoMock.EXPECT().
		Insert(ctx, hazard).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidateListCache(ctx).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		// Проверяем, что событие содержит созданную запись и автора
		Do(func(ctx context.Context, event webhook.HazardEvent) {
			assert.Equal(t, hazard, event.Hazard)
			assert.Equal(t, "driver42", event.ReportedBy)
		}).Return(nil).Times(1)

	// Действие
	err := service.Report(ctx, hazard, "driver42")

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hazard.ID)
	assert.Equal(t, testNow, hazard.CreatedAt)
	assert.Equal(t, models.SourceUser, hazard.Source)
}

func TestReportHazard_DistinctIDs(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock, _ := newTestHazardService(t)
	ctx := context.Background()
	first := &models.Hazard{Type: models.TypeDebris, Latitude: 10.0, Longitude: 20.0}
	second := &models.Hazard{Type: models.TypeDebris, Latitude: 10.0, Longitude: 20.0}

	// Ожидания
	repoMock.EXPECT().Insert(ctx, gomock.Any()).Return(nil).Times(2)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil).Times(2)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	require.NoError(t, service.Report(ctx, first, "driver42"))
	require.NoError(t, service.Report(ctx, second, "driver42"))

	// Проверки
	// Две записи с одинаковыми полями получают разные идентификаторы
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestReportHazard_KeepsCameraSource(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock, _ := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{
		Type:      models.TypeStopSign,
		Latitude:  32.5,
		Longitude: -92.6,
		Source:    models.SourceCamera,
	}

	// Ожидания
	repoMock.EXPECT().Insert(ctx, hazard).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.Report(ctx, hazard, "dashcam")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SourceCamera, hazard.Source)
}

func TestReportHazard_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock, _ := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{Type: models.TypeRoadClosure, Latitude: 1.0, Longitude: 2.0}
	repoError := fmt.Errorf("соединение потеряно")

	// Ожидания
	repoMock.EXPECT().Insert(ctx, hazard).Return(repoError).Times(1)
	// При ошибке вставки кеш не трогаем и событие не публикуем
	repoMock.EXPECT().InvalidateListCache(gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Report(ctx, hazard, "driver42")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to report hazard")
}

func TestReportHazard_PublishErrorIgnored(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock, _ := newTestHazardService(t)
	ctx := context.Background()
	hazard := &models.Hazard{Type: models.TypeOther, Latitude: 3.0, Longitude: 4.0}

	// Ожидания
	repoMock.EXPECT().Insert(ctx, hazard).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("очередь недоступна")).
		Times(1)

	// Действие
	err := service.Report(ctx, hazard, "driver42")

	// Проверки
	// Сбой публикации не отменяет сохраненную запись
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hazard.ID)
}

func TestListHazards_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	expectedHazards := []*models.Hazard{
		{ID: uuid.New(), Type: models.TypePothole, CreatedAt: testNow},
	}

	// Ожидания
	repoMock.EXPECT().
		GetListFromCache(ctx).
		Return(expectedHazards, nil).
		Times(1)
	repoMock.EXPECT().List(gomock.Any()).Times(0)

	// Действие
	hazards, err := service.List(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazards, hazards)
}

func TestListHazards_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	expectedHazards := []*models.Hazard{
		{ID: uuid.New(), Type: models.TypeDebris, CreatedAt: testNow},
		{ID: uuid.New(), Type: models.TypePothole, CreatedAt: testNow.Add(-time.Hour)},
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetListFromCache(ctx).
		Return(nil, nil).
		Times(1)

	// 2. Чтение из БД
	repoMock.EXPECT().
		List(ctx).
		Return(expectedHazards, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetListCache(ctx, expectedHazards).
		Return(nil).
		Times(1)

	// Действие
	hazards, err := service.List(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazards, hazards)
}

func TestListHazards_CacheErrorFallsBack(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	expectedHazards := []*models.Hazard{
		{ID: uuid.New(), Type: models.TypeOther, CreatedAt: testNow},
	}

	// Ожидания
	// Ошибка кеша не мешает чтению из БД
	repoMock.EXPECT().GetListFromCache(ctx).Return(nil, fmt.Errorf("кеш недоступен")).Times(1)
	repoMock.EXPECT().List(ctx).Return(expectedHazards, nil).Times(1)
	repoMock.EXPECT().SetListCache(ctx, expectedHazards).Return(nil).Times(1)

	// Действие
	hazards, err := service.List(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazards, hazards)
}

func TestListHazards_DBError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение потеряно")

	// Ожидания
	repoMock.EXPECT().GetListFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().List(ctx).Return(nil, dbError).Times(1)

	// Действие
	hazards, err := service.List(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazards)
	assert.ErrorContains(t, err, "failed to list hazards")
}

func TestCountHazards_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	expectedCount := 42

	// Ожидания
	repoMock.EXPECT().Count(ctx).Return(expectedCount, nil).Times(1)

	// Действие
	count, err := service.Count(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedCount, count)
}

func TestCountHazards_Error(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение потеряно")

	// Ожидания
	repoMock.EXPECT().Count(ctx).Return(0, dbError).Times(1)

	// Действие
	count, err := service.Count(ctx)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, count)
	assert.ErrorContains(t, err, "failed to count hazards")
}
