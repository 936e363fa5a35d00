// Package query хранит параметры строки запроса страницы карты.
package query

import (
	"net/url"
	"sync"
)

// Params - потокобезопасный набор параметров строки запроса
type Params struct {
	mu     sync.RWMutex
	values url.Values
}

// Parse создаёт набор из строки запроса; ведущий '?' допускается
func Parse(raw string) (*Params, error) {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	return &Params{values: values}, nil
}

func New() *Params {
	return &Params{values: url.Values{}}
}

// SetSearchParam заменяет значение параметра
func (p *Params) SetSearchParam(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values.Set(key, value)
}

func (p *Params) Get(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Get(key)
}

// Encode возвращает строку запроса, отсортированную по ключам
func (p *Params) Encode() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Encode()
}
