package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/mapstate"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func square(x, y float64) orb.Polygon {
	return orb.Polygon{{{x, y}, {x + 2, y}, {x + 2, y + 2}, {x, y + 2}, {x, y}}}
}

func testCountries() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, name := range []string{"France", "Italy", "Atlantis"} {
		f := geojson.NewFeature(square(float64(i*10), 0))
		f.Properties[models.PropName] = name
		f.Properties[models.PropISO2] = name[:2]
		fc.Append(f)
	}
	return fc
}

func newTestMapService(t *testing.T, withLabels bool) (*mapService, *mocks.MockLockdownService, *mocks.MockFeatureLoader, *mocks.MockFeatureLoader) {
	ctrl := gomock.NewController(t)
	lockdownsMock := mocks.NewMockLockdownService(ctrl)
	countriesMock := mocks.NewMockFeatureLoader(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	var labelsMock *mocks.MockFeatureLoader
	var labels FeatureLoader
	if withLabels {
		labelsMock = mocks.NewMockFeatureLoader(ctrl)
		labels = labelsMock
	}

	opts := mapstate.WidgetOptions{Center: orb.Point{10, 50}, Zoom: 2, Style: "mapbox://styles/mapbox/light-v10"}
	svc := NewMapService(lockdownsMock, countriesMock, labels, opts, logger).(*mapService)
	return svc, lockdownsMock, countriesMock, labelsMock
}

func testLookup() models.LockdownLookup {
	return models.LockdownLookup{
		"France": {RegionName: "France", Intervals: []models.LockdownInterval{{Start: testNow.Add(time.Hour)}}},
		"Italy":  {RegionName: "Italy", Intervals: []models.LockdownInterval{}},
	}
}

func TestEnrichedCountries_Success(t *testing.T) {
	// Подготовка
	svc, lockdownsMock, countriesMock, _ := newTestMapService(t, false)
	ctx := context.Background()

	// Ожидания
	lockdownsMock.EXPECT().GetLockdowns(gomock.Any()).Return(testLookup(), nil)
	countriesMock.EXPECT().Load(gomock.Any()).Return(testCountries(), nil)

	// Действие
	fc, err := svc.EnrichedCountries(ctx, testNow)

	// Проверки
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	colors := map[string]string{}
	for _, f := range fc.Features {
		props := models.PropertiesOf(f)
		colors[props.Name] = props.Color
	}
	assert.Equal(t, map[string]string{"France": "red", "Italy": "green", "Atlantis": "orange"}, colors)
}

func TestEnrichedCountries_FetchFailure(t *testing.T) {
	svc, lockdownsMock, countriesMock, _ := newTestMapService(t, false)
	ctx := context.Background()
	loadErr := errors.New("file not found")

	lockdownsMock.EXPECT().GetLockdowns(gomock.Any()).Return(testLookup(), nil).AnyTimes()
	countriesMock.EXPECT().Load(gomock.Any()).Return(nil, loadErr)

	fc, err := svc.EnrichedCountries(ctx, testNow)

	assert.Nil(t, fc)
	assert.ErrorIs(t, err, mapstate.ErrDataFetch)
	assert.ErrorIs(t, err, loadErr)
}

func TestLabels_FallbackToCentroids(t *testing.T) {
	svc, _, countriesMock, _ := newTestMapService(t, false)

	countriesMock.EXPECT().Load(gomock.Any()).Return(testCountries(), nil)

	labels, err := svc.Labels(context.Background())

	require.NoError(t, err)
	require.Len(t, labels.Features, 3)
	point, ok := labels.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.InDelta(t, 1.0, point[0], 1e-9)
	assert.InDelta(t, 1.0, point[1], 1e-9)
}

func TestLabels_FromLoader(t *testing.T) {
	svc, _, countriesMock, labelsMock := newTestMapService(t, true)
	expected := geojson.NewFeatureCollection()
	expected.Append(geojson.NewFeature(orb.Point{2, 46}))

	labelsMock.EXPECT().Load(gomock.Any()).Return(expected, nil)
	countriesMock.EXPECT().Load(gomock.Any()).Times(0)

	labels, err := svc.Labels(context.Background())

	require.NoError(t, err)
	assert.Same(t, expected, labels)
}

func TestStyle_BuildsCountriesAndLabels(t *testing.T) {
	// Подготовка
	svc, lockdownsMock, countriesMock, _ := newTestMapService(t, false)

	// Ожидания
	lockdownsMock.EXPECT().GetLockdowns(gomock.Any()).Return(testLookup(), nil)
	// один раз для стран, один раз для вычисления подписей
	countriesMock.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*geojson.FeatureCollection, error) {
		return testCountries(), nil
	}).Times(2)

	// Действие
	style, err := svc.Style(context.Background(), testNow)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 8, style.Version)
	assert.Equal(t, orb.Point{10, 50}, style.Center)
	require.Contains(t, style.Sources, mapstate.CountriesSourceID)
	require.Contains(t, style.Sources, mapstate.LabelsSourceID)
	require.Len(t, style.Layers, 2)
	assert.Equal(t, mapstate.CountriesLayerID, style.Layers[0].ID)
	assert.Equal(t, mapstate.LabelsLayerID, style.Layers[1].ID)

	countries := style.Sources[mapstate.CountriesSourceID].Data
	assert.Equal(t, "red", models.PropertiesOf(countries.Features[0]).Color)
}

func TestStyle_FetchFailure(t *testing.T) {
	svc, lockdownsMock, countriesMock, _ := newTestMapService(t, false)
	dbErr := errors.New("db down")

	lockdownsMock.EXPECT().GetLockdowns(gomock.Any()).Return(nil, dbErr)
	countriesMock.EXPECT().Load(gomock.Any()).Return(testCountries(), nil).AnyTimes()

	_, err := svc.Style(context.Background(), testNow)

	assert.ErrorIs(t, err, mapstate.ErrDataFetch)
	assert.ErrorIs(t, err, dbErr)
}

func TestStyle_LabelsFailureBuildsWithoutLabels(t *testing.T) {
	// Подготовка
	svc, lockdownsMock, countriesMock, labelsMock := newTestMapService(t, true)

	// Ожидания
	lockdownsMock.EXPECT().GetLockdowns(gomock.Any()).Return(testLookup(), nil)
	countriesMock.EXPECT().Load(gomock.Any()).Return(testCountries(), nil)
	labelsMock.EXPECT().Load(gomock.Any()).Return(nil, errors.New("labels.geojson: no such file"))

	// Действие
	style, err := svc.Style(context.Background(), testNow)

	// Проверки
	require.NoError(t, err)
	require.Contains(t, style.Sources, mapstate.CountriesSourceID)
	assert.NotContains(t, style.Sources, mapstate.LabelsSourceID)
	require.Len(t, style.Layers, 1)
	assert.Equal(t, mapstate.CountriesLayerID, style.Layers[0].ID)
}
