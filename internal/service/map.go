package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/mapstate"
	"github.com/shenikar/lockdown_map/internal/metrics"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=map.go -destination=mocks/mock_map.go -package=mocks

// FeatureLoader отдаёт новую коллекцию объектов на каждый вызов
type FeatureLoader interface {
	Load(ctx context.Context) (*geojson.FeatureCollection, error)
}

// MapService определяет контракт построения данных карты
type MapService interface {
	mapstate.DataSource
	EnrichedCountries(ctx context.Context, at time.Time) (*geojson.FeatureCollection, error)
	Style(ctx context.Context, at time.Time) (mapstate.Style, error)
}

type mapService struct {
	lockdowns LockdownService
	countries FeatureLoader
	labels    FeatureLoader
	widget    mapstate.WidgetOptions
	logger    *logrus.Logger
}

// NewMapService создаёт сервис карты; labels может быть nil,
// тогда подписи вычисляются по геометрии стран.
func NewMapService(lockdowns LockdownService, countries, labels FeatureLoader, widget mapstate.WidgetOptions, logger *logrus.Logger) MapService {
	return &mapService{
		lockdowns: lockdowns,
		countries: countries,
		labels:    labels,
		widget:    widget,
		logger:    logger,
	}
}

func (s *mapService) Lockdowns(ctx context.Context) (models.LockdownLookup, error) {
	return s.lockdowns.GetLockdowns(ctx)
}

func (s *mapService) Countries(ctx context.Context) (*geojson.FeatureCollection, error) {
	fc, err := s.countries.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load countries: %w", err)
	}
	return fc, nil
}

// Labels возвращает точки подписей стран
func (s *mapService) Labels(ctx context.Context) (*geojson.FeatureCollection, error) {
	if s.labels != nil {
		fc, err := s.labels.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("service: could not load labels: %w", err)
		}
		return fc, nil
	}

	countries, err := s.Countries(ctx)
	if err != nil {
		return nil, err
	}
	return lockdown.Labels(countries), nil
}

// EnrichedCountries возвращает страны со статусом и цветом на момент at
func (s *mapService) EnrichedCountries(ctx context.Context, at time.Time) (*geojson.FeatureCollection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "EnrichedCountries",
	})

	var (
		lookup    models.LockdownLookup
		countries *geojson.FeatureCollection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lookup, err = s.Lockdowns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = s.Countries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.MapBuildsTotal.WithLabelValues("failed").Inc()
		log.WithError(err).Error("Failed to fetch map data")
		return nil, fmt.Errorf("%w: %w", mapstate.ErrDataFetch, err)
	}

	lockdown.Join(countries, lookup, at)
	s.observe(countries)
	metrics.MapBuildsTotal.WithLabelValues("success").Inc()

	log.WithField("features", len(countries.Features)).Debug("Countries enriched")
	return countries, nil
}

// Style собирает стиль карты, прогоняя контроллер на записывающем виджете
func (s *mapService) Style(ctx context.Context, at time.Time) (mapstate.Style, error) {
	style, err := mapstate.BuildStyle(ctx, s, s.widget, s.logger,
		mapstate.WithClock(func() time.Time { return at }))
	if err != nil {
		metrics.MapBuildsTotal.WithLabelValues("failed").Inc()
		return mapstate.Style{}, err
	}
	metrics.MapBuildsTotal.WithLabelValues("success").Inc()
	if src, ok := style.Sources[mapstate.CountriesSourceID]; ok {
		s.observe(src.Data)
	}
	return style, nil
}

func (s *mapService) observe(fc *geojson.FeatureCollection) {
	summary := lockdown.Summary(fc)
	for _, status := range []models.Status{models.StatusUnknown, models.StatusNone, models.StatusActive, models.StatusExpired} {
		metrics.RegionsByStatus.WithLabelValues(string(status)).Set(float64(summary[status]))
	}
}
