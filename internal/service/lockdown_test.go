package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/service/mocks"
	"github.com/shenikar/lockdown_map/internal/webhook"
	webhook_mocks "github.com/shenikar/lockdown_map/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2020, 4, 15, 12, 0, 0, 0, time.UTC)

// newTestLockdownService создаёт сервис с моками и фиксированным временем
func newTestLockdownService(t *testing.T) (*lockdownService, *mocks.MockLockdownRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLockdownRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewLockdownService(repoMock, logger, webhookMock).(*lockdownService)
	service.now = func() time.Time { return testNow }
	return service, repoMock, webhookMock
}

func ptr(t time.Time) *time.Time { return &t }

func TestGetLockdowns_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	expected := models.LockdownLookup{
		"France": {RegionName: "France", Intervals: []models.LockdownInterval{}},
	}

	// Ожидания
	repoMock.EXPECT().GetLookupFromCache(ctx).Return(expected, nil).Times(1)

	// Действие
	lookup, err := service.GetLockdowns(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, lookup)
}

func TestGetLockdowns_CacheMiss_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	expected := models.LockdownLookup{
		"Italy": {RegionName: "Italy", Intervals: []models.LockdownInterval{{Start: testNow}}},
	}

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().GetLookupFromCache(ctx).Return(nil, nil),
		repoMock.EXPECT().ListLockdowns(ctx).Return(expected, nil),
		repoMock.EXPECT().SetLookupCache(ctx, expected).Return(nil),
	)

	// Действие
	lookup, err := service.GetLockdowns(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, lookup)
}

func TestGetLockdowns_CacheError_FallsBackToDB(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	expected := models.LockdownLookup{}

	repoMock.EXPECT().GetLookupFromCache(ctx).Return(nil, errors.New("redis down"))
	repoMock.EXPECT().ListLockdowns(ctx).Return(expected, nil)
	repoMock.EXPECT().SetLookupCache(ctx, expected).Return(errors.New("redis down"))

	lookup, err := service.GetLockdowns(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, lookup)
}

func TestGetLockdowns_DBError(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repoMock.EXPECT().GetLookupFromCache(ctx).Return(nil, nil)
	repoMock.EXPECT().ListLockdowns(ctx).Return(nil, dbErr)

	lookup, err := service.GetLockdowns(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, lookup)
}

func TestGetLockdown_NotFound(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetLockdown(ctx, "Atlantis").Return(nil, models.ErrRegionNotFound)

	rec, err := service.GetLockdown(ctx, "Atlantis")

	assert.ErrorIs(t, err, models.ErrRegionNotFound)
	assert.Nil(t, rec)
}

func TestSaveLockdown_StatusChanged_PublishesWebhook(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestLockdownService(t)
	ctx := context.Background()
	rec := &models.RegionLockdownRecord{
		RegionName: "France",
		ISO2:       "FR",
		Intervals:  []models.LockdownInterval{{Start: testNow.Add(24 * time.Hour)}},
	}

	// Ожидания
	repoMock.EXPECT().GetLockdown(ctx, "France").Return(nil, models.ErrRegionNotFound)
	repoMock.EXPECT().UpsertLockdown(ctx, rec).Return(nil)
	repoMock.EXPECT().InvalidateLookupCache(ctx).Return(nil)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.StatusChangeEvent) error {
			assert.Equal(t, "France", event.Region)
			assert.Equal(t, "FR", event.ISO2)
			assert.Equal(t, models.StatusUnknown, event.PreviousStatus)
			assert.Equal(t, models.StatusActive, event.Status)
			assert.Equal(t, "red", event.Color)
			assert.Equal(t, testNow, event.Timestamp)
			return nil
		}).
		Times(1)

	// Действие
	err := service.SaveLockdown(ctx, rec)

	// Проверки
	require.NoError(t, err)
}

func TestSaveLockdown_StatusUnchanged_NoWebhook(t *testing.T) {
	service, repoMock, webhookMock := newTestLockdownService(t)
	ctx := context.Background()
	existing := &models.RegionLockdownRecord{
		RegionName: "Spain",
		Intervals:  []models.LockdownInterval{{Start: testNow.Add(-48 * time.Hour), End: ptr(testNow.Add(-24 * time.Hour))}},
	}
	rec := &models.RegionLockdownRecord{
		RegionName: "Spain",
		Intervals:  []models.LockdownInterval{{Start: testNow.Add(-72 * time.Hour)}},
	}

	repoMock.EXPECT().GetLockdown(ctx, "Spain").Return(existing, nil)
	repoMock.EXPECT().UpsertLockdown(ctx, rec).Return(nil)
	repoMock.EXPECT().InvalidateLookupCache(ctx).Return(nil)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.SaveLockdown(ctx, rec))
}

func TestSaveLockdown_PublishError_StillSucceeds(t *testing.T) {
	service, repoMock, webhookMock := newTestLockdownService(t)
	ctx := context.Background()
	rec := &models.RegionLockdownRecord{RegionName: "Chad", Intervals: []models.LockdownInterval{}}

	repoMock.EXPECT().GetLockdown(ctx, "Chad").Return(nil, models.ErrRegionNotFound)
	repoMock.EXPECT().UpsertLockdown(ctx, rec).Return(nil)
	repoMock.EXPECT().InvalidateLookupCache(ctx).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue full"))

	assert.NoError(t, service.SaveLockdown(ctx, rec))
}

func TestSaveLockdown_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	rec := &models.RegionLockdownRecord{RegionName: "Peru"}
	dbErr := errors.New("constraint violation")

	repoMock.EXPECT().GetLockdown(ctx, "Peru").Return(nil, models.ErrRegionNotFound)
	repoMock.EXPECT().UpsertLockdown(ctx, rec).Return(dbErr)

	err := service.SaveLockdown(ctx, rec)

	assert.ErrorIs(t, err, dbErr)
}

func TestSaveLockdown_LookupError(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()
	dbErr := errors.New("timeout")

	repoMock.EXPECT().GetLockdown(ctx, "Peru").Return(nil, dbErr)

	err := service.SaveLockdown(ctx, &models.RegionLockdownRecord{RegionName: "Peru"})

	assert.ErrorIs(t, err, dbErr)
}

func TestDeleteLockdown_PublishesUnknown(t *testing.T) {
	service, repoMock, webhookMock := newTestLockdownService(t)
	ctx := context.Background()
	existing := &models.RegionLockdownRecord{RegionName: "Peru", ISO2: "PE", Intervals: []models.LockdownInterval{}}

	repoMock.EXPECT().GetLockdown(ctx, "Peru").Return(existing, nil)
	repoMock.EXPECT().DeleteLockdown(ctx, "Peru").Return(nil)
	repoMock.EXPECT().InvalidateLookupCache(ctx).Return(nil)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.StatusChangeEvent) error {
			assert.Equal(t, models.StatusNone, event.PreviousStatus)
			assert.Equal(t, models.StatusUnknown, event.Status)
			assert.Equal(t, "orange", event.Color)
			return nil
		})

	require.NoError(t, service.DeleteLockdown(ctx, "Peru"))
}

func TestDeleteLockdown_NotFound(t *testing.T) {
	service, repoMock, _ := newTestLockdownService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetLockdown(ctx, "Atlantis").Return(nil, models.ErrRegionNotFound)
	repoMock.EXPECT().DeleteLockdown(gomock.Any(), gomock.Any()).Times(0)

	err := service.DeleteLockdown(ctx, "Atlantis")

	assert.ErrorIs(t, err, models.ErrRegionNotFound)
}

func TestRegionStatus(t *testing.T) {
	tests := []struct {
		name     string
		rec      *models.RegionLockdownRecord
		repoErr  error
		expected models.Status
		wantErr  bool
	}{
		{
			name:     "missing region is unknown",
			repoErr:  models.ErrRegionNotFound,
			expected: models.StatusUnknown,
		},
		{
			name:     "empty interval list is none",
			rec:      &models.RegionLockdownRecord{Intervals: []models.LockdownInterval{}},
			expected: models.StatusNone,
		},
		{
			name:     "future start is active",
			rec:      &models.RegionLockdownRecord{Intervals: []models.LockdownInterval{{Start: testNow.Add(time.Hour)}}},
			expected: models.StatusActive,
		},
		{
			name:     "past start is expired",
			rec:      &models.RegionLockdownRecord{Intervals: []models.LockdownInterval{{Start: testNow.Add(-time.Hour)}}},
			expected: models.StatusExpired,
		},
		{
			name:    "repository failure",
			repoErr: errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _ := newTestLockdownService(t)
			ctx := context.Background()
			repoMock.EXPECT().GetLockdown(ctx, "X").Return(tt.rec, tt.repoErr)

			status, err := service.RegionStatus(ctx, "X", testNow)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
