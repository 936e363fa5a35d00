package mapstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Идентификаторы источников и слоёв
const (
	CountriesSourceID = "countries"
	CountriesLayerID  = "countries"
	LabelsSourceID    = "labels"
	LabelsLayerID     = "labels"
)

var (
	ErrDataFetch      = errors.New("map data fetch failed")
	ErrAlreadyMounted = errors.New("map controller already mounted")
	ErrDisposed       = errors.New("map controller disposed")
)

// State - состояние жизненного цикла контроллера
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateInitialized
	StateFailed
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateInitialized:
		return "initialized"
	case StateFailed:
		return "failed"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Controller владеет одним экземпляром виджета карты от монтирования до удаления.
// Все обработчики событий сериализуются через mu.
type Controller struct {
	mu      sync.Mutex
	state   State
	data    DataSource
	factory WidgetFactory
	router  Router
	opts    WidgetOptions
	logger  *logrus.Logger
	now     func() time.Time
	onLoad  func(Widget)

	widget    Widget
	cancel    context.CancelFunc
	err       error
	countries *geojson.FeatureCollection

	// единственный курсор наведения
	hoveredID any
	hovering  bool
}

// Option настраивает контроллер
type Option func(*Controller)

// WithClock подменяет источник текущего времени для классификации
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithOnLoad вызывается после события load виджета
func WithOnLoad(fn func(Widget)) Option {
	return func(c *Controller) { c.onLoad = fn }
}

func NewController(data DataSource, factory WidgetFactory, router Router, opts WidgetOptions, logger *logrus.Logger, options ...Option) *Controller {
	c := &Controller{
		data:    data,
		factory: factory,
		router:  router,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// CountriesLayer - слой заливки стран цветом статуса.
// Объекты без цвета не отображаются.
func CountriesLayer() Layer {
	return Layer{
		ID:     CountriesLayerID,
		Type:   "fill",
		Source: CountriesSourceID,
		Layout: map[string]any{},
		Paint: map[string]any{
			"fill-color":   []any{"get", models.PropColor},
			"fill-opacity": []any{"case", []any{"boolean", []any{"feature-state", "hover"}, false}, 0.8, 0.4},
		},
		Filter: []any{"has", models.PropColor},
	}
}

// LabelsLayer - слой подписей с названиями стран
func LabelsLayer() Layer {
	return Layer{
		ID:     LabelsLayerID,
		Type:   "symbol",
		Source: LabelsSourceID,
		Layout: map[string]any{
			"text-field": []any{"get", models.PropName},
			"text-size":  12,
		},
	}
}

// Mount загружает данные, создаёт виджет и регистрирует источники, слои и обработчики
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateUninitialized:
	case StateDisposed:
		c.mu.Unlock()
		return ErrDisposed
	default:
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.state = StateLoading
	c.cancel = cancel
	c.mu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"component": "mapstate",
		"method":    "Mount",
	})
	log.Debug("Loading map data")

	var (
		lookup    models.LockdownLookup
		countries *geojson.FeatureCollection
		labels    *geojson.FeatureCollection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if lookup, err = c.data.Lockdowns(gctx); err != nil {
			return fmt.Errorf("lockdowns: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if countries, err = c.data.Countries(gctx); err != nil {
			return fmt.Errorf("countries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// слой подписей необязателен: без него карта строится без подписей
		var err error
		if labels, err = c.data.Labels(gctx); err != nil {
			log.WithError(err).Warn("Failed to load labels, map will be built without them")
			labels = nil
		}
		return nil
	})
	fetchErr := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDisposed {
		log.Info("Controller disposed while loading, discarding map data")
		return ErrDisposed
	}
	if fetchErr == nil && countries == nil {
		fetchErr = errors.New("countries: empty feature collection")
	}
	if fetchErr != nil {
		log.WithError(fetchErr).Error("Failed to load map data")
		return c.fail(fmt.Errorf("%w: %w", ErrDataFetch, fetchErr))
	}

	// обогащение завершается до того, как виджет увидит объекты
	lockdown.Join(countries, lookup, c.now())

	widget, err := c.factory(c.opts)
	if err != nil {
		log.WithError(err).Error("Failed to create map widget")
		return c.fail(fmt.Errorf("mapstate: could not create widget: %w", err))
	}
	if err := c.register(widget, countries, labels); err != nil {
		widget.Remove()
		log.WithError(err).Error("Failed to register map sources")
		return c.fail(err)
	}

	c.widget = widget
	c.countries = countries
	c.state = StateInitialized
	log.WithField("features", len(countries.Features)).Info("Map initialized")
	return nil
}

func (c *Controller) register(widget Widget, countries, labels *geojson.FeatureCollection) error {
	if err := widget.AddSource(CountriesSourceID, Source{Type: "geojson", Data: countries, GenerateID: true}); err != nil {
		return fmt.Errorf("mapstate: could not add source %q: %w", CountriesSourceID, err)
	}
	if err := widget.AddLayer(CountriesLayer()); err != nil {
		return fmt.Errorf("mapstate: could not add layer %q: %w", CountriesLayerID, err)
	}

	hasLabels := labels != nil && len(labels.Features) > 0
	if hasLabels {
		if err := widget.AddSource(LabelsSourceID, Source{Type: "geojson", Data: labels}); err != nil {
			return fmt.Errorf("mapstate: could not add source %q: %w", LabelsSourceID, err)
		}
		if err := widget.AddLayer(LabelsLayer()); err != nil {
			return fmt.Errorf("mapstate: could not add layer %q: %w", LabelsLayerID, err)
		}
	}

	widget.On(EventLoad, "", c.handleLoad)
	widget.On(EventMouseMove, CountriesLayerID, c.handleHover)
	widget.On(EventClick, CountriesLayerID, c.handleClick)
	if hasLabels {
		widget.On(EventClick, LabelsLayerID, c.handleClick)
	}
	return nil
}

// fail вызывается под mu
func (c *Controller) fail(err error) error {
	c.state = StateFailed
	c.err = err
	return err
}

func (c *Controller) handleLoad(Event) {
	c.mu.Lock()
	widget := c.widget
	ready := c.state == StateInitialized
	c.mu.Unlock()

	if !ready {
		return
	}
	c.logger.WithField("component", "mapstate").Debug("Map widget loaded")
	if c.onLoad != nil {
		c.onLoad(widget)
	}
}

func (c *Controller) handleHover(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInitialized || len(ev.Features) == 0 {
		return
	}
	id, ok := featureID(ev.Features[0].ID)
	if !ok {
		return
	}
	if c.hovering && c.hoveredID == id {
		return
	}
	if c.hovering {
		c.widget.SetFeatureState(FeatureRef{Source: CountriesSourceID, ID: c.hoveredID}, map[string]any{"hover": false})
	}
	c.hoveredID = id
	c.hovering = true
	c.widget.SetFeatureState(FeatureRef{Source: CountriesSourceID, ID: id}, map[string]any{"hover": true})
}

// featureID принимает только строковые и числовые идентификаторы
func featureID(id any) (any, bool) {
	switch id.(type) {
	case string, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return id, true
	default:
		return nil, false
	}
}

func (c *Controller) handleClick(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInitialized || len(ev.Features) == 0 {
		return
	}
	if DispatchClick(c.router, ev.Features[0]) {
		c.logger.WithFields(logrus.Fields{
			"component": "mapstate",
			"country":   models.PropertiesOf(ev.Features[0]).Name,
		}).Debug("Country selected")
	}
}

// SetCenter перемещает карту; до инициализации ничего не делает
func (c *Controller) SetCenter(center orb.Point, zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInitialized {
		return
	}
	c.widget.SetCenter(center, zoom)
}

// Dispose освобождает виджет. Во время загрузки отменяет её, и результат
// загрузки будет отброшен. Повторный вызов ничего не делает.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateDisposed:
		return
	case StateInitialized:
		c.widget.Remove()
		c.widget = nil
	case StateLoading:
		c.cancel()
	}
	c.state = StateDisposed
	c.hovering = false
	c.hoveredID = nil
	c.countries = nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err возвращает ошибку, с которой контроллер перешёл в StateFailed
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Hovered возвращает идентификатор подсвеченного объекта
func (c *Controller) Hovered() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hoveredID, c.hovering
}

// Countries возвращает обогащённую коллекцию стран
func (c *Controller) Countries() *geojson.FeatureCollection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countries
}
