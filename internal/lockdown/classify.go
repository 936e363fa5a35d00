// Package lockdown классифицирует регионы по статусу локдауна и обогащает
// географические объекты цветом статуса.
package lockdown

import (
	"time"

	"github.com/shenikar/lockdown_map/internal/models"
)

// Цвета статусов на карте. none и expired намеренно окрашиваются одинаково.
const (
	ColorUnknown = "orange"
	ColorNone    = "green"
	ColorActive  = "red"
	ColorExpired = "green"
)

// Classify вычисляет статус по списку интервалов на момент now.
// nil означает, что интервалы неизвестны; пустой список - что локдаунов не было.
// Каждый интервал перезаписывает результат, поэтому решает последний.
func Classify(intervals []models.LockdownInterval, now time.Time) models.Status {
	if intervals == nil {
		return models.StatusUnknown
	}

	status := models.StatusNone
	for _, interval := range intervals {
		if isActive(interval, now) {
			status = models.StatusActive
		} else {
			status = models.StatusExpired
		}
	}
	return status
}

// ClassifyRecord - Classify для записи из справочника; отсутствующая запись даёт unknown
func ClassifyRecord(rec *models.RegionLockdownRecord, now time.Time) models.Status {
	if rec == nil {
		return models.StatusUnknown
	}
	return Classify(rec.Intervals, now)
}

// isActive: start >= now && (end == nil || end < now).
// Интервал с некорректной датой активным не считается.
func isActive(interval models.LockdownInterval, now time.Time) bool {
	if interval.Malformed {
		return false
	}
	if interval.Start.Before(now) {
		return false
	}
	if interval.End == nil {
		return true
	}
	return interval.End.Before(now)
}

// StatusColor возвращает цвет заливки для статуса
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusNone:
		return ColorNone
	case models.StatusActive:
		return ColorActive
	case models.StatusExpired:
		return ColorExpired
	default:
		return ColorUnknown
	}
}
