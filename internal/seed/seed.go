// Package seed загружает записи о локдаунах из JSON-документа вида
// { "<регион>": { "iso2": "..", "lockdowns": [ {"start": "..", "end": ".."} ] } }.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/sirupsen/logrus"
)

// Store - часть репозитория, нужная для загрузки
type Store interface {
	UpsertLockdown(ctx context.Context, rec *models.RegionLockdownRecord) error
	InvalidateLookupCache(ctx context.Context) error
}

type document map[string]struct {
	ISO2 string `json:"iso2"`
	// отсутствующий ключ оставляет nil: интервалы неизвестны
	Lockdowns []models.LockdownInterval `json:"lockdowns"`
}

// Decode разбирает документ. Некорректные даты не прерывают разбор,
// интервал помечается как Malformed. Записи упорядочены по имени региона.
func Decode(r io.Reader) ([]*models.RegionLockdownRecord, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("seed: could not decode lockdowns: %w", err)
	}

	records := make([]*models.RegionLockdownRecord, 0, len(doc))
	for name, entry := range doc {
		records = append(records, &models.RegionLockdownRecord{
			RegionName: name,
			ISO2:       entry.ISO2,
			Intervals:  entry.Lockdowns,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].RegionName < records[j].RegionName })
	return records, nil
}

// Summarize считает записи по статусам на момент now
func Summarize(records []*models.RegionLockdownRecord, now time.Time) map[models.Status]int {
	summary := make(map[models.Status]int)
	for _, rec := range records {
		summary[lockdown.ClassifyRecord(rec, now)]++
	}
	return summary
}

// Load сохраняет записи и сбрасывает кеш справочника
func Load(ctx context.Context, store Store, records []*models.RegionLockdownRecord, logger *logrus.Logger) error {
	for _, rec := range records {
		malformed := 0
		for _, interval := range rec.Intervals {
			if interval.Malformed {
				malformed++
			}
		}
		entry := logger.WithField("region", rec.RegionName)
		if malformed > 0 {
			entry.WithField("malformed", malformed).Warn("Region has intervals with malformed dates")
		}

		if err := store.UpsertLockdown(ctx, rec); err != nil {
			return fmt.Errorf("seed: could not save %q: %w", rec.RegionName, err)
		}
		entry.Debug("Region seeded")
	}

	if err := store.InvalidateLookupCache(ctx); err != nil {
		logger.WithError(err).Warn("Failed to invalidate lockdowns cache")
	}
	logger.WithField("count", len(records)).Info("Lockdowns seeded")
	return nil
}
