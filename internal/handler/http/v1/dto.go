package v1

import (
	"time"
)

// LockdownIntervalDTO DTO интервала локдауна
// @Description Период ограничений; пустой end означает, что период не завершён
type LockdownIntervalDTO struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end,omitempty"`
}

// UpsertLockdownRequest DTO для сохранения записи о локдаунах региона.
// Отсутствующий lockdowns означает, что данные о регионе неизвестны.
// @Description DTO для сохранения записи о локдаунах региона
type UpsertLockdownRequest struct {
	ISO2      string                `json:"iso2,omitempty" validate:"omitempty,len=2,alpha"`
	Lockdowns []LockdownIntervalDTO `json:"lockdowns" validate:"omitempty,dive"`
}

// LockdownIntervalResponse DTO интервала в ответе
// @Description Интервал локдауна
type LockdownIntervalResponse struct {
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end"`
	Malformed bool       `json:"malformed,omitempty"`
}

// LockdownResponse DTO для ответа с записью о локдаунах
// @Description Запись о локдаунах региона с текущим статусом
type LockdownResponse struct {
	Region    string                     `json:"region"`
	ISO2      string                     `json:"iso2,omitempty"`
	Lockdowns []LockdownIntervalResponse `json:"lockdowns"`
	Status    string                     `json:"status"`
	Color     string                     `json:"color"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// RegionStatusResponse DTO для ответа со статусом региона
// @Description Статус локдауна региона на момент at
type RegionStatusResponse struct {
	Region string    `json:"region"`
	Status string    `json:"status"`
	Color  string    `json:"color"`
	At     time.Time `json:"at"`
}

// MapClickRequest DTO клика по стране
// @Description Клик по стране или подписи; query - текущая строка запроса страницы
type MapClickRequest struct {
	Name  string `json:"name" validate:"required"`
	ISO2  string `json:"iso2,omitempty"`
	Query string `json:"query,omitempty"`
}

// MapClickResponse DTO ответа на клик
// @Description Обновлённая строка запроса
type MapClickResponse struct {
	Query   string `json:"query"`
	Country string `json:"country"`
	ISO2    string `json:"iso2,omitempty"`
}

// PermissionRequest DTO состояния разрешения геолокации.
// event=load - первичная проверка при открытии карты, event=change - изменение разрешения.
// При state=granted координаты обязательны. Пустой state означает, что клиенту
// запрос разрешений недоступен.
// @Description Состояние разрешения геолокации клиента
type PermissionRequest struct {
	Event     string   `json:"event,omitempty" validate:"omitempty,oneof=load change"`
	State     string   `json:"state" validate:"omitempty,oneof=granted denied prompt"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// PermissionResponse DTO ответа синхронизации геолокации
// @Description Результат синхронизации: новый центр карты, если он изменился
type PermissionResponse struct {
	Granted bool      `json:"granted"`
	Center  []float64 `json:"center,omitempty"`
	Zoom    float64   `json:"zoom,omitempty"`
}

// GeolocationFlagResponse DTO сохранённого флага геолокации сессии
// @Description Разрешена ли геолокация в сессии
type GeolocationFlagResponse struct {
	Session string `json:"session"`
	Granted bool   `json:"granted"`
}
