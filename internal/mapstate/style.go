package mapstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// Style - документ стиля Mapbox GL (version 8)
type Style struct {
	Version  int               `json:"version"`
	Name     string            `json:"name,omitempty"`
	Center   orb.Point         `json:"center"`
	Zoom     float64           `json:"zoom"`
	Sources  map[string]Source `json:"sources"`
	Layers   []Layer           `json:"layers"`
	Metadata map[string]any    `json:"metadata,omitempty"`
}

type subscription struct {
	event   string
	layerID string
	handler Handler
}

// StyleWidget - виджет без отрисовки: собирает источники и слои в документ стиля,
// который отдаётся браузерному клиенту.
type StyleWidget struct {
	mu       sync.Mutex
	style    Style
	states   map[string]map[any]map[string]any
	handlers []subscription
	removed  bool
}

// NewStyleWidget подходит как WidgetFactory
func NewStyleWidget(opts WidgetOptions) (Widget, error) {
	return newStyleWidget(opts), nil
}

func newStyleWidget(opts WidgetOptions) *StyleWidget {
	w := &StyleWidget{
		style: Style{
			Version: 8,
			Name:    "lockdowns",
			Center:  opts.Center,
			Zoom:    opts.Zoom,
			Sources: make(map[string]Source),
			Layers:  make([]Layer, 0),
		},
		states: make(map[string]map[any]map[string]any),
	}
	if opts.Style != "" {
		w.style.Metadata = map[string]any{"base-style": opts.Style}
	}
	return w
}

func (w *StyleWidget) AddSource(id string, source Source) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.removed {
		return fmt.Errorf("style widget removed")
	}
	if _, exists := w.style.Sources[id]; exists {
		return fmt.Errorf("source %q already exists", id)
	}
	if source.GenerateID && source.Data != nil {
		for i, feature := range source.Data.Features {
			if feature.ID == nil {
				feature.ID = i
			}
		}
	}
	w.style.Sources[id] = source
	return nil
}

func (w *StyleWidget) AddLayer(layer Layer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.removed {
		return fmt.Errorf("style widget removed")
	}
	if _, ok := w.style.Sources[layer.Source]; !ok {
		return fmt.Errorf("layer %q references unknown source %q", layer.ID, layer.Source)
	}
	for _, existing := range w.style.Layers {
		if existing.ID == layer.ID {
			return fmt.Errorf("layer %q already exists", layer.ID)
		}
	}
	w.style.Layers = append(w.style.Layers, layer)
	return nil
}

func (w *StyleWidget) SetFeatureState(ref FeatureRef, state map[string]any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	bySource, ok := w.states[ref.Source]
	if !ok {
		bySource = make(map[any]map[string]any)
		w.states[ref.Source] = bySource
	}
	current, ok := bySource[ref.ID]
	if !ok {
		current = make(map[string]any)
		bySource[ref.ID] = current
	}
	for k, v := range state {
		current[k] = v
	}
}

// FeatureState возвращает состояние объекта источника
func (w *StyleWidget) FeatureState(source string, id any) map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()

	result := make(map[string]any)
	for k, v := range w.states[source][id] {
		result[k] = v
	}
	return result
}

func (w *StyleWidget) On(event, layerID string, handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, subscription{event: event, layerID: layerID, handler: handler})
}

// Fire доставляет событие подписчикам с совпадающим слоем
func (w *StyleWidget) Fire(event, layerID string, ev Event) {
	w.mu.Lock()
	if w.removed {
		w.mu.Unlock()
		return
	}
	var targets []Handler
	for _, sub := range w.handlers {
		if sub.event == event && sub.layerID == layerID {
			targets = append(targets, sub.handler)
		}
	}
	w.mu.Unlock()

	for _, handler := range targets {
		handler(ev)
	}
}

func (w *StyleWidget) SetCenter(center orb.Point, zoom float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.style.Center = center
	w.style.Zoom = zoom
}

func (w *StyleWidget) Remove() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removed = true
	w.handlers = nil
}

// Removed сообщает, был ли виджет освобождён
func (w *StyleWidget) Removed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.removed
}

// Style возвращает копию собранного документа стиля
func (w *StyleWidget) Style() Style {
	w.mu.Lock()
	defer w.mu.Unlock()

	style := w.style
	style.Sources = make(map[string]Source, len(w.style.Sources))
	for id, source := range w.style.Sources {
		style.Sources[id] = source
	}
	style.Layers = append([]Layer(nil), w.style.Layers...)
	return style
}

type discardRouter struct{}

func (discardRouter) SetSearchParam(string, string) {}

// BuildStyle монтирует контроллер на StyleWidget и возвращает собранный стиль.
// Контроллер освобождается до возврата.
func BuildStyle(ctx context.Context, data DataSource, opts WidgetOptions, logger *logrus.Logger, options ...Option) (Style, error) {
	var widget *StyleWidget
	factory := func(o WidgetOptions) (Widget, error) {
		widget = newStyleWidget(o)
		return widget, nil
	}

	ctrl := NewController(data, factory, discardRouter{}, opts, logger, options...)
	defer ctrl.Dispose()

	if err := ctrl.Mount(ctx); err != nil {
		return Style{}, err
	}
	widget.Fire(EventLoad, "", Event{})
	return widget.Style(), nil
}
