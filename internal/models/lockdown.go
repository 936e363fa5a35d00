package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrRegionNotFound возвращается, когда для региона нет записи о локдаунах
var ErrRegionNotFound = errors.New("region not found")

// Status - категория локдауна для региона
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusNone    Status = "none"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// LockdownInterval - один зафиксированный период ограничений.
// End == nil означает, что ограничения действовали на момент сбора данных.
type LockdownInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`

	// Malformed выставляется, если дату из исходных данных не удалось разобрать
	Malformed bool `json:"malformed,omitempty"`
}

// RegionLockdownRecord - запись о локдаунах региона.
// Intervals == nil означает, что список интервалов неизвестен.
type RegionLockdownRecord struct {
	RegionName string             `json:"region"`
	ISO2       string             `json:"iso2,omitempty"`
	Intervals  []LockdownInterval `json:"lockdowns"`
	UpdatedAt  time.Time          `json:"updated_at,omitempty"`
}

// LockdownLookup - записи о локдаунах по отображаемому имени региона
type LockdownLookup map[string]*RegionLockdownRecord

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate разбирает дату в одном из поддерживаемых форматов.
// Дата без зоны считается UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON не падает на некорректных датах, а помечает интервал как Malformed.
// Дата, записанная не строкой, тоже считается некорректной.
func (i *LockdownInterval) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start     json.RawMessage `json:"start"`
		End       json.RawMessage `json:"end"`
		Malformed bool            `json:"malformed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*i = LockdownInterval{Malformed: true}
		return nil
	}

	*i = LockdownInterval{Malformed: raw.Malformed}
	start, ok := decodeDate(raw.Start)
	if !ok || start == nil {
		i.Malformed = true
	} else {
		i.Start = *start
	}

	end, ok := decodeDate(raw.End)
	if !ok {
		i.Malformed = true
	}
	i.End = end
	return nil
}

// decodeDate возвращает nil для отсутствующего значения, null и пустой строки;
// ok == false, если значение не строка или не разбирается как дата
func decodeDate(raw json.RawMessage) (*time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	t, ok := ParseDate(value)
	if !ok {
		return nil, false
	}
	return &t, true
}
