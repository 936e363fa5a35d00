// Package mapstate управляет жизненным циклом виджета карты: загрузкой данных,
// регистрацией источников и слоёв, подсветкой при наведении и кликами.
package mapstate

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/models"
)

// События виджета
const (
	EventLoad      = "load"
	EventMouseMove = "mousemove"
	EventClick     = "click"
)

// WidgetOptions - параметры создания виджета карты
type WidgetOptions struct {
	Center      orb.Point
	Zoom        float64
	AccessToken string
	Style       string
}

// Source - источник данных GeoJSON
type Source struct {
	Type       string                     `json:"type"`
	Data       *geojson.FeatureCollection `json:"data"`
	GenerateID bool                       `json:"generateId,omitempty"`
}

// Layer - описание слоя в терминах стиля Mapbox GL
type Layer struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Source string         `json:"source"`
	Layout map[string]any `json:"layout"`
	Paint  map[string]any `json:"paint,omitempty"`
	Filter []any          `json:"filter,omitempty"`
}

// FeatureRef ссылается на объект источника
type FeatureRef struct {
	Source string
	ID     any
}

// Event - событие указателя; Features упорядочены сверху вниз
type Event struct {
	Features []*geojson.Feature
	LngLat   orb.Point
}

// Handler - обработчик события виджета
type Handler func(Event)

// Widget - внешний виджет карты
type Widget interface {
	AddSource(id string, source Source) error
	AddLayer(layer Layer) error
	SetFeatureState(ref FeatureRef, state map[string]any)
	// On подписывает обработчик; пустой layerID означает событие всей карты
	On(event, layerID string, handler Handler)
	SetCenter(center orb.Point, zoom float64)
	Remove()
}

// WidgetFactory создаёт виджет с заданными параметрами
type WidgetFactory func(opts WidgetOptions) (Widget, error)

// Router меняет параметры строки запроса страницы
type Router interface {
	SetSearchParam(key, value string)
}

// DataSource отдаёт данные, нужные для построения карты.
// Countries должен возвращать новую коллекцию на каждый вызов: она изменяется на месте.
type DataSource interface {
	Lockdowns(ctx context.Context) (models.LockdownLookup, error)
	Countries(ctx context.Context) (*geojson.FeatureCollection, error)
	// Labels может вернуть nil, если подписи не нужны
	Labels(ctx context.Context) (*geojson.FeatureCollection, error)
}

// DispatchClick передаёт имя региона и ISO-код в роутер
func DispatchClick(router Router, feature *geojson.Feature) bool {
	props := models.PropertiesOf(feature)
	if props.Name == "" {
		return false
	}
	router.SetSearchParam("country", props.Name)
	if props.ISO2 != "" {
		router.SetSearchParam("iso2", props.ISO2)
	}
	return true
}
