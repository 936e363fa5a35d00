package lockdown

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{x, y}, {x + 2, y}, {x + 2, y + 2}, {x, y + 2}, {x, y}}}
}

func newCountries(names ...string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, name := range names {
		f := geojson.NewFeature(square(float64(i*10), 0))
		f.Properties[models.PropName] = name
		fc.Append(f)
	}
	return fc
}

func testLookup() models.LockdownLookup {
	return models.LockdownLookup{
		"Redland":   {RegionName: "Redland", Intervals: []models.LockdownInterval{{Start: day(1)}}},
		"Greenland": {RegionName: "Greenland", Intervals: []models.LockdownInterval{}},
		"Pastland":  {RegionName: "Pastland", Intervals: []models.LockdownInterval{{Start: day(-1)}}},
	}
}

func colors(fc *geojson.FeatureCollection) map[string]string {
	result := make(map[string]string)
	for _, f := range fc.Features {
		props := models.PropertiesOf(f)
		result[props.Name] = props.Color
	}
	return result
}

func TestJoin_AssignsColors(t *testing.T) {
	// Подготовка
	fc := newCountries("Redland", "Greenland", "Pastland", "Unknownland")
	lookup := testLookup()

	// Действие
	result := Join(fc, lookup, now)

	// Проверки
	require.Same(t, fc, result)
	assert.Equal(t, map[string]string{
		"Redland":     "red",
		"Greenland":   "green",
		"Pastland":    "green",
		"Unknownland": "orange",
	}, colors(fc))

	for _, f := range fc.Features {
		_, hasColor := f.Properties[models.PropColor]
		assert.True(t, hasColor)
	}
	assert.Same(t, lookup["Redland"], models.PropertiesOf(fc.Features[0]).Data)
	assert.Nil(t, models.PropertiesOf(fc.Features[3]).Data)
	assert.Equal(t, models.StatusUnknown, models.PropertiesOf(fc.Features[3]).Status)
}

func TestJoin_Idempotent(t *testing.T) {
	fc := newCountries("Redland", "Greenland", "Unknownland")
	lookup := testLookup()

	first := colors(Join(fc, lookup, now))
	second := colors(Join(fc, lookup, now))

	assert.Equal(t, first, second)
	assert.Len(t, fc.Features[0].Properties, 4) // NAME, data, status, color
}

func TestJoin_DropsStaleData(t *testing.T) {
	fc := newCountries("Redland")
	Join(fc, testLookup(), now)

	Join(fc, models.LockdownLookup{}, now)

	_, hasData := fc.Features[0].Properties[models.PropData]
	assert.False(t, hasData)
	assert.Equal(t, "orange", models.PropertiesOf(fc.Features[0]).Color)
}

func TestJoin_FeatureWithoutProperties(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(square(0, 0))
	f.Properties = nil
	fc.Append(f)

	Join(fc, testLookup(), now)

	assert.Equal(t, "orange", fc.Features[0].Properties[models.PropColor])
	assert.Nil(t, Join(nil, testLookup(), now))
}

func TestSummary(t *testing.T) {
	fc := Join(newCountries("Redland", "Greenland", "Pastland", "Unknownland", "Otherland"), testLookup(), now)

	summary := Summary(fc)

	assert.Equal(t, 1, summary[models.StatusActive])
	assert.Equal(t, 1, summary[models.StatusNone])
	assert.Equal(t, 1, summary[models.StatusExpired])
	assert.Equal(t, 2, summary[models.StatusUnknown])
}

func TestLabels(t *testing.T) {
	fc := newCountries("Redland", "Greenland")
	fc.Features[1].Properties[models.PropISO2] = "GL"
	nameless := geojson.NewFeature(square(50, 50))
	fc.Append(nameless)

	labels := Labels(fc)

	require.Len(t, labels.Features, 2)
	first := labels.Features[0].Geometry.(orb.Point)
	assert.InDelta(t, 1.0, first.Lon(), 1e-9)
	assert.InDelta(t, 1.0, first.Lat(), 1e-9)
	second := labels.Features[1].Geometry.(orb.Point)
	assert.InDelta(t, 11.0, second.Lon(), 1e-9)
	assert.Equal(t, "GL", labels.Features[1].Properties[models.PropISO2])
	_, hasISO := labels.Features[0].Properties[models.PropISO2]
	assert.False(t, hasISO)
}
