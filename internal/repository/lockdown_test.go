package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInterval_NormalizesToUTC(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*3600)
	start := time.Date(2020, 3, 30, 3, 0, 0, 0, moscow)
	end := time.Date(2020, 5, 12, 3, 0, 0, 0, moscow)
	malformed := true

	interval := toInterval(start, &end, &malformed)

	assert.Equal(t, time.UTC, interval.Start.Location())
	assert.True(t, start.Equal(interval.Start))
	require.NotNil(t, interval.End)
	assert.Equal(t, time.UTC, interval.End.Location())
	assert.True(t, interval.Malformed)
}

func TestToInterval_OpenEnded(t *testing.T) {
	interval := toInterval(time.Date(2020, 3, 30, 0, 0, 0, 0, time.UTC), nil, nil)

	assert.Nil(t, interval.End)
	assert.False(t, interval.Malformed)
}

// Справочник из кеша должен классифицироваться так же, как из БД
func TestLookupCacheEncoding_PreservesClassification(t *testing.T) {
	now := time.Date(2020, 4, 15, 0, 0, 0, 0, time.UTC)
	end := now.Add(-time.Hour)
	lookup := models.LockdownLookup{
		"Unknown": {RegionName: "Unknown"},
		"None":    {RegionName: "None", Intervals: []models.LockdownInterval{}},
		"Active":  {RegionName: "Active", Intervals: []models.LockdownInterval{{Start: now.Add(time.Hour)}}},
		"Expired": {RegionName: "Expired", Intervals: []models.LockdownInterval{{Start: now.Add(-2 * time.Hour), End: &end}}},
		"Broken":  {RegionName: "Broken", Intervals: []models.LockdownInterval{{Start: now.Add(time.Hour), Malformed: true}}},
	}

	raw, err := json.Marshal(lookup)
	require.NoError(t, err)
	decoded := make(models.LockdownLookup)
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for name, rec := range lookup {
		assert.Equal(t, lockdown.ClassifyRecord(rec, now), lockdown.ClassifyRecord(decoded[name], now), name)
	}
}
