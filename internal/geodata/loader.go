// Package geodata загружает статические коллекции географических объектов
// из файла или по URL.
package geodata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/paulmach/orb/geojson"
)

// Loader читает документ один раз и на каждый вызов Load отдаёт новую коллекцию,
// так как потребители изменяют её на месте.
type Loader struct {
	location string
	client   *http.Client

	mu  sync.Mutex
	raw []byte
}

// NewLoader создаёт загрузчик; location - путь к файлу или http(s) URL
func NewLoader(location string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		location: location,
		client:   client,
	}
}

// Location возвращает путь или URL документа
func (l *Loader) Location() string {
	return l.location
}

// Load возвращает разобранную коллекцию объектов. Документ запоминается
// только после успешного разбора.
func (l *Loader) Load(ctx context.Context) (*geojson.FeatureCollection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw := l.raw
	if raw == nil {
		var err error
		if raw, err = l.read(ctx); err != nil {
			return nil, err
		}
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson %s: %w", l.location, err)
	}
	l.raw = raw
	return fc, nil
}

// Reset сбрасывает закешированный документ
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.raw = nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.location, "http://") || strings.HasPrefix(l.location, "https://") {
		return l.fetch(ctx)
	}
	raw, err := os.ReadFile(l.location)
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson %s: %w", l.location, err)
	}
	return raw, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", l.location, err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch geojson %s: %w", l.location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch geojson %s: unexpected status %d", l.location, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson body %s: %w", l.location, err)
	}
	return raw, nil
}
