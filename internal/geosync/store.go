package geosync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFlagStore хранит флаг разрешения геолокации для одной сессии
type RedisFlagStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisFlagStore(client *redis.Client, session string, ttl time.Duration) *RedisFlagStore {
	return &RedisFlagStore{
		client: client,
		key:    FlagKey(session),
		ttl:    ttl,
	}
}

// FlagKey возвращает ключ Redis для сессии
func FlagKey(session string) string {
	return fmt.Sprintf("geolocation:granted:%s", session)
}

func (s *RedisFlagStore) SetGranted(ctx context.Context) error {
	if err := s.client.Set(ctx, s.key, "true", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set geolocation flag: %w", err)
	}
	return nil
}

func (s *RedisFlagStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear geolocation flag: %w", err)
	}
	return nil
}

func (s *RedisFlagStore) Granted(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get geolocation flag: %w", err)
	}
	return val == "true", nil
}

// MemoryFlagStore - FlagStore в памяти процесса
type MemoryFlagStore struct {
	mu      sync.Mutex
	granted bool
}

func (s *MemoryFlagStore) SetGranted(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = true
	return nil
}

func (s *MemoryFlagStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = false
	return nil
}

func (s *MemoryFlagStore) Granted(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granted, nil
}

// Reported - состояние разрешения и позиция, присланные клиентом
type Reported struct {
	State    PermissionState
	Position *Position
}

func (r Reported) Query(context.Context) (PermissionState, error) {
	return r.State, nil
}

// Subscribe ничего не делает: клиент присылает каждое изменение отдельным запросом
func (r Reported) Subscribe(func(PermissionState)) {}

func (r Reported) CurrentPosition(context.Context) (Position, error) {
	if r.Position == nil {
		return Position{}, errors.New("position was not reported")
	}
	return *r.Position, nil
}
