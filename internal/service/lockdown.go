package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/metrics"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=lockdown.go -destination=mocks/mock_lockdown.go -package=mocks

// LockdownRepository определяет контракт для работы с бд локдаунов
type LockdownRepository interface {
	ListLockdowns(ctx context.Context) (models.LockdownLookup, error)
	GetLockdown(ctx context.Context, name string) (*models.RegionLockdownRecord, error)
	UpsertLockdown(ctx context.Context, rec *models.RegionLockdownRecord) error
	DeleteLockdown(ctx context.Context, name string) error
	GetLookupFromCache(ctx context.Context) (models.LockdownLookup, error)
	SetLookupCache(ctx context.Context, lookup models.LockdownLookup) error
	InvalidateLookupCache(ctx context.Context) error
}

// LockdownService определяет контракт бизнес-логики записей о локдаунах
type LockdownService interface {
	GetLockdowns(ctx context.Context) (models.LockdownLookup, error)
	GetLockdown(ctx context.Context, name string) (*models.RegionLockdownRecord, error)
	SaveLockdown(ctx context.Context, rec *models.RegionLockdownRecord) error
	DeleteLockdown(ctx context.Context, name string) error
	RegionStatus(ctx context.Context, name string, at time.Time) (models.Status, error)
}

type lockdownService struct {
	repo      LockdownRepository
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewLockdownService(repo LockdownRepository, logger *logrus.Logger, publisher webhook.WebhookPublisher) LockdownService {
	return &lockdownService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetLockdowns возвращает справочник локдаунов, по возможности из кеша
func (s *lockdownService) GetLockdowns(ctx context.Context) (models.LockdownLookup, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lockdown",
		"method":  "GetLockdowns",
	})

	cached, err := s.repo.GetLookupFromCache(ctx)
	if err != nil {
		// кеш недоступен, идём в БД
		log.WithError(err).Warn("Failed to read lockdowns from cache")
	}
	if cached != nil {
		metrics.LockdownCacheHitsTotal.Inc()
		log.Debug("Lockdowns served from cache")
		return cached, nil
	}
	metrics.LockdownCacheMissesTotal.Inc()

	lookup, err := s.repo.ListLockdowns(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list lockdowns from repository")
		return nil, fmt.Errorf("service: could not list lockdowns: %w", err)
	}

	if err := s.repo.SetLookupCache(ctx, lookup); err != nil {
		log.WithError(err).Warn("Failed to cache lockdowns")
	}

	log.WithField("count", len(lookup)).Info("Lockdowns listed successfully")
	return lookup, nil
}

// GetLockdown получает запись по имени региона
func (s *lockdownService) GetLockdown(ctx context.Context, name string) (*models.RegionLockdownRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lockdown",
		"method":  "GetLockdown",
		"region":  name,
	})

	rec, err := s.repo.GetLockdown(ctx, name)
	if err != nil {
		log.WithError(err).Warn("Failed to get lockdown from repository")
		return nil, fmt.Errorf("service: could not get lockdown: %w", err)
	}
	return rec, nil
}

// SaveLockdown сохраняет запись и публикует вебхук, если статус региона изменился
func (s *lockdownService) SaveLockdown(ctx context.Context, rec *models.RegionLockdownRecord) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lockdown",
		"method":  "SaveLockdown",
		"region":  rec.RegionName,
	})
	log.Info("Attempting to save lockdown record")

	now := s.now()
	previous, err := s.previousStatus(ctx, rec.RegionName, now)
	if err != nil {
		log.WithError(err).Error("Failed to load existing lockdown record")
		return fmt.Errorf("service: could not save lockdown: %w", err)
	}

	if err := s.repo.UpsertLockdown(ctx, rec); err != nil {
		log.WithError(err).Error("Failed to save lockdown in repository")
		return fmt.Errorf("service: could not save lockdown: %w", err)
	}
	s.invalidate(ctx, log)

	current := lockdown.Classify(rec.Intervals, now)
	if current != previous {
		s.publish(ctx, log, rec.RegionName, rec.ISO2, previous, current, now)
	}

	log.WithField("status", current).Info("Lockdown record saved successfully")
	return nil
}

// DeleteLockdown удаляет запись; статус региона становится unknown
func (s *lockdownService) DeleteLockdown(ctx context.Context, name string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lockdown",
		"method":  "DeleteLockdown",
		"region":  name,
	})
	log.Info("Attempting to delete lockdown record")

	existing, err := s.repo.GetLockdown(ctx, name)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent lockdown record")
		return fmt.Errorf("service: region %q not found for delete: %w", name, err)
	}

	if err := s.repo.DeleteLockdown(ctx, name); err != nil {
		log.WithError(err).Error("Failed to delete lockdown in repository")
		return fmt.Errorf("service: could not delete lockdown: %w", err)
	}
	s.invalidate(ctx, log)

	now := s.now()
	previous := lockdown.ClassifyRecord(existing, now)
	if previous != models.StatusUnknown {
		s.publish(ctx, log, name, existing.ISO2, previous, models.StatusUnknown, now)
	}

	log.Info("Lockdown record deleted successfully")
	return nil
}

// RegionStatus классифицирует регион на момент at; регион без записи - unknown
func (s *lockdownService) RegionStatus(ctx context.Context, name string, at time.Time) (models.Status, error) {
	rec, err := s.repo.GetLockdown(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrRegionNotFound) {
			return models.StatusUnknown, nil
		}
		return models.StatusUnknown, fmt.Errorf("service: could not get region status: %w", err)
	}
	return lockdown.ClassifyRecord(rec, at), nil
}

func (s *lockdownService) previousStatus(ctx context.Context, name string, now time.Time) (models.Status, error) {
	existing, err := s.repo.GetLockdown(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrRegionNotFound) {
			return models.StatusUnknown, nil
		}
		return models.StatusUnknown, err
	}
	return lockdown.ClassifyRecord(existing, now), nil
}

func (s *lockdownService) invalidate(ctx context.Context, log *logrus.Entry) {
	if err := s.repo.InvalidateLookupCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate lockdowns cache")
	}
}

// publish не возвращает ошибку: запись уже сохранена, вебхук вторичен
func (s *lockdownService) publish(ctx context.Context, log *logrus.Entry, region, iso2 string, previous, current models.Status, now time.Time) {
	event := webhook.StatusChangeEvent{
		EventID:        uuid.New(),
		Region:         region,
		ISO2:           iso2,
		PreviousStatus: previous,
		Status:         current,
		Color:          lockdown.StatusColor(current),
		Timestamp:      now,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish status change webhook")
		return
	}
	log.WithFields(logrus.Fields{
		"previous_status": previous,
		"status":          current,
	}).Info("Status change webhook published")
}
