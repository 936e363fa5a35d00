package lockdown

import (
	"testing"
	"time"

	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2020, 4, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func dayPtr(offset int) *time.Time {
	t := day(offset)
	return &t
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		intervals []models.LockdownInterval
		expected  models.Status
	}{
		{
			name:      "неизвестный список интервалов",
			intervals: nil,
			expected:  models.StatusUnknown,
		},
		{
			name:      "пустой список интервалов",
			intervals: []models.LockdownInterval{},
			expected:  models.StatusNone,
		},
		{
			name:      "начался вчера без окончания",
			intervals: []models.LockdownInterval{{Start: day(-1)}},
			expected:  models.StatusExpired,
		},
		{
			name:      "начинается завтра без окончания",
			intervals: []models.LockdownInterval{{Start: day(1)}},
			expected:  models.StatusActive,
		},
		{
			name:      "начало ровно сейчас",
			intervals: []models.LockdownInterval{{Start: now}},
			expected:  models.StatusActive,
		},
		{
			name:      "начинается завтра, окончание в будущем",
			intervals: []models.LockdownInterval{{Start: day(1), End: dayPtr(10)}},
			expected:  models.StatusExpired,
		},
		{
			name:      "начинается завтра, окончание в прошлом",
			intervals: []models.LockdownInterval{{Start: day(1), End: dayPtr(-3)}},
			expected:  models.StatusActive,
		},
		{
			name:      "сейчас внутри интервала",
			intervals: []models.LockdownInterval{{Start: day(-5), End: dayPtr(5)}},
			expected:  models.StatusExpired,
		},
		{
			name: "решает последний интервал",
			intervals: []models.LockdownInterval{
				{Start: day(1)},
				{Start: day(-30), End: dayPtr(-20)},
			},
			expected: models.StatusExpired,
		},
		{
			name: "последний интервал активен",
			intervals: []models.LockdownInterval{
				{Start: day(-30), End: dayPtr(-20)},
				{Start: day(2)},
			},
			expected: models.StatusActive,
		},
		{
			name:      "некорректная дата не активна",
			intervals: []models.LockdownInterval{{Start: day(1), Malformed: true}},
			expected:  models.StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.intervals, now))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	intervals := []models.LockdownInterval{{Start: day(1)}, {Start: day(-1), End: dayPtr(3)}}

	first := Classify(intervals, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(intervals, now))
	}
}

func TestClassifyRecord_Missing(t *testing.T) {
	assert.Equal(t, models.StatusUnknown, ClassifyRecord(nil, now))
	assert.Equal(t, models.StatusUnknown, ClassifyRecord(&models.RegionLockdownRecord{RegionName: "Nowhere"}, now))
	assert.Equal(t, models.StatusNone, ClassifyRecord(&models.RegionLockdownRecord{Intervals: []models.LockdownInterval{}}, now))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "orange", StatusColor(models.StatusUnknown))
	assert.Equal(t, "green", StatusColor(models.StatusNone))
	assert.Equal(t, "red", StatusColor(models.StatusActive))
	assert.Equal(t, "green", StatusColor(models.StatusExpired))
	assert.Equal(t, "orange", StatusColor(models.Status("bogus")))
}
