package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/models"
)

// DTOToLockdownModel преобразует DTO сохранения в доменную модель.
// В отличие от исходных данных, некорректная дата в запросе - ошибка клиента.
func DTOToLockdownModel(region string, dto UpsertLockdownRequest) (*models.RegionLockdownRecord, error) {
	rec := &models.RegionLockdownRecord{
		RegionName: region,
		ISO2:       dto.ISO2,
	}
	if dto.Lockdowns == nil {
		return rec, nil
	}

	rec.Intervals = make([]models.LockdownInterval, 0, len(dto.Lockdowns))
	for i, item := range dto.Lockdowns {
		start, ok := models.ParseDate(item.Start)
		if !ok {
			return nil, fmt.Errorf("lockdowns[%d]: invalid start date %q", i, item.Start)
		}
		interval := models.LockdownInterval{Start: start}
		if item.End != "" {
			end, ok := models.ParseDate(item.End)
			if !ok {
				return nil, fmt.Errorf("lockdowns[%d]: invalid end date %q", i, item.End)
			}
			interval.End = &end
		}
		rec.Intervals = append(rec.Intervals, interval)
	}
	return rec, nil
}

// ModelToLockdownResponse преобразует запись в DTO со статусом на момент now
func ModelToLockdownResponse(model *models.RegionLockdownRecord, now time.Time) *LockdownResponse {
	status := lockdown.ClassifyRecord(model, now)
	resp := &LockdownResponse{
		Region:    model.RegionName,
		ISO2:      model.ISO2,
		Status:    string(status),
		Color:     lockdown.StatusColor(status),
		UpdatedAt: model.UpdatedAt,
	}
	if model.Intervals != nil {
		resp.Lockdowns = make([]LockdownIntervalResponse, len(model.Intervals))
		for i, interval := range model.Intervals {
			resp.Lockdowns[i] = LockdownIntervalResponse{
				Start:     interval.Start,
				End:       interval.End,
				Malformed: interval.Malformed,
			}
		}
	}
	return resp
}

// LookupToLockdownResponses преобразует справочник в словарь DTO по имени региона
func LookupToLockdownResponses(lookup models.LockdownLookup, now time.Time) map[string]*LockdownResponse {
	responses := make(map[string]*LockdownResponse, len(lookup))
	for name, rec := range lookup {
		responses[name] = ModelToLockdownResponse(rec, now)
	}
	return responses
}
