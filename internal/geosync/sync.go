// Package geosync центрирует карту по геолокации пользователя, если доступ
// к ней уже был разрешён. Запрос разрешения никогда не инициируется.
package geosync

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// PermissionState - состояние разрешения на геолокацию
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionPrompt  PermissionState = "prompt"
)

// Position - координаты пользователя
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Permissions - запрос состояния разрешения и подписка на его изменения
type Permissions interface {
	Query(ctx context.Context) (PermissionState, error)
	Subscribe(fn func(PermissionState))
}

// Geolocator однократно возвращает текущую позицию
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// FlagStore хранит признак того, что геолокация была разрешена
type FlagStore interface {
	SetGranted(ctx context.Context) error
	Clear(ctx context.Context) error
	Granted(ctx context.Context) (bool, error)
}

// View - карта, которую можно переместить
type View interface {
	SetCenter(center orb.Point, zoom float64)
}

type Sync struct {
	perms  Permissions
	geo    Geolocator
	flags  FlagStore
	view   View
	zoom   float64
	logger *logrus.Logger
}

// New создаёт синхронизатор. perms == nil означает, что запрос разрешений недоступен.
func New(perms Permissions, geo Geolocator, flags FlagStore, view View, zoom float64, logger *logrus.Logger) *Sync {
	return &Sync{
		perms:  perms,
		geo:    geo,
		flags:  flags,
		view:   view,
		zoom:   zoom,
		logger: logger,
	}
}

// Start подписывается на изменения разрешения и, если доступ уже выдан,
// центрирует карту. Ошибка получения позиции не отменяет подписку.
func (s *Sync) Start(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"component": "geosync",
		"method":    "Start",
	})
	if s.perms == nil {
		log.Debug("Permission query is unavailable, skipping geolocation sync")
		return nil
	}

	state, err := s.perms.Query(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to query geolocation permission")
		return nil
	}

	s.perms.Subscribe(func(next PermissionState) {
		if err := s.HandleChange(ctx, next); err != nil {
			log.WithError(err).Warn("Failed to handle permission change")
		}
	})

	if state == PermissionGranted {
		if err := s.recenter(ctx); err != nil {
			log.WithError(err).Warn("Failed to recenter map on user position")
		}
	}
	return nil
}

// HandleChange обрабатывает смену состояния разрешения
func (s *Sync) HandleChange(ctx context.Context, state PermissionState) error {
	log := s.logger.WithFields(logrus.Fields{
		"component": "geosync",
		"method":    "HandleChange",
		"state":     state,
	})

	if state != PermissionGranted {
		if err := s.flags.Clear(ctx); err != nil {
			return fmt.Errorf("geosync: could not clear flag: %w", err)
		}
		log.Debug("Geolocation flag cleared")
		return nil
	}

	if err := s.flags.SetGranted(ctx); err != nil {
		return fmt.Errorf("geosync: could not persist flag: %w", err)
	}
	log.Debug("Geolocation flag persisted")
	return s.recenter(ctx)
}

func (s *Sync) recenter(ctx context.Context) error {
	if s.geo == nil {
		return nil
	}
	pos, err := s.geo.CurrentPosition(ctx)
	if err != nil {
		return fmt.Errorf("geosync: could not get current position: %w", err)
	}
	s.view.SetCenter(orb.Point{pos.Longitude, pos.Latitude}, s.zoom)
	return nil
}
