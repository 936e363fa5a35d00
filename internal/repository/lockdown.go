package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/service"
)

const lookupCacheKey = "lockdowns:lookup"

type LockdownRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLockdownRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.LockdownRepository {
	return &LockdownRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ListLockdowns возвращает все записи о локдаунах, сгруппированные по региону
func (r *LockdownRepository) ListLockdowns(ctx context.Context) (models.LockdownLookup, error) {
	query := `
		SELECT
			r.name,
			r.iso2,
			r.intervals_known,
			r.updated_at,
			i.starts_at,
			i.ends_at,
			i.malformed
		FROM regions r
		LEFT JOIN lockdown_intervals i ON i.region_name = r.name
		ORDER BY r.name, i.position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lockdowns: %w", err)
	}
	defer rows.Close()

	lookup := make(models.LockdownLookup)
	for rows.Next() {
		var (
			name, iso2 string
			known      bool
			updatedAt  time.Time
			startsAt   *time.Time
			endsAt     *time.Time
			malformed  *bool
		)
		if err := rows.Scan(&name, &iso2, &known, &updatedAt, &startsAt, &endsAt, &malformed); err != nil {
			return nil, fmt.Errorf("failed to scan lockdown row: %w", err)
		}

		rec, ok := lookup[name]
		if !ok {
			rec = &models.RegionLockdownRecord{RegionName: name, ISO2: iso2, UpdatedAt: updatedAt}
			if known {
				rec.Intervals = []models.LockdownInterval{}
			}
			lookup[name] = rec
		}
		if startsAt != nil && known {
			rec.Intervals = append(rec.Intervals, toInterval(*startsAt, endsAt, malformed))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return lookup, nil
}

// GetLockdown возвращает запись по имени региона
func (r *LockdownRepository) GetLockdown(ctx context.Context, name string) (*models.RegionLockdownRecord, error) {
	rec := &models.RegionLockdownRecord{RegionName: name}
	var known bool
	query := `SELECT iso2, intervals_known, updated_at FROM regions WHERE name = $1;`
	err := r.db.QueryRow(ctx, query, name).Scan(&rec.ISO2, &known, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("region %q: %w", name, models.ErrRegionNotFound)
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	if !known {
		return rec, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT starts_at, ends_at, malformed
		FROM lockdown_intervals
		WHERE region_name = $1
		ORDER BY position;
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get lockdown intervals: %w", err)
	}
	defer rows.Close()

	rec.Intervals = make([]models.LockdownInterval, 0)
	for rows.Next() {
		var (
			startsAt  time.Time
			endsAt    *time.Time
			malformed bool
		)
		if err := rows.Scan(&startsAt, &endsAt, &malformed); err != nil {
			return nil, fmt.Errorf("failed to scan lockdown interval: %w", err)
		}
		rec.Intervals = append(rec.Intervals, toInterval(startsAt, endsAt, &malformed))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error interval iteration: %w", err)
	}
	return rec, nil
}

// UpsertLockdown заменяет запись региона вместе со всеми интервалами
func (r *LockdownRepository) UpsertLockdown(ctx context.Context, rec *models.RegionLockdownRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	err = tx.QueryRow(ctx, `
		INSERT INTO regions (name, iso2, intervals_known, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO UPDATE SET
			iso2 = EXCLUDED.iso2,
			intervals_known = EXCLUDED.intervals_known,
			updated_at = NOW()
		RETURNING updated_at;
	`, rec.RegionName, rec.ISO2, rec.Intervals != nil).Scan(&rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert region: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lockdown_intervals WHERE region_name = $1;`, rec.RegionName); err != nil {
		return fmt.Errorf("failed to clear lockdown intervals: %w", err)
	}

	if len(rec.Intervals) > 0 {
		batch := &pgx.Batch{}
		for i, interval := range rec.Intervals {
			batch.Queue(`
				INSERT INTO lockdown_intervals (region_name, position, starts_at, ends_at, malformed)
				VALUES ($1, $2, $3, $4, $5);
			`, rec.RegionName, i, interval.Start, interval.End, interval.Malformed)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert lockdown intervals: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit lockdown: %w", err)
	}
	return nil
}

// DeleteLockdown удаляет регион; интервалы удаляются каскадно
func (r *LockdownRepository) DeleteLockdown(ctx context.Context, name string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM regions WHERE name = $1;`, name)
	if err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("region %q not found for delete: %w", name, models.ErrRegionNotFound)
	}
	return nil
}

// GetLookupFromCache пытается получить справочник из Redis; промах возвращает nil, nil
func (r *LockdownRepository) GetLookupFromCache(ctx context.Context) (models.LockdownLookup, error) {
	val, err := r.redisClient.Get(ctx, lookupCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lockdowns from cache: %w", err)
	}

	lookup := make(models.LockdownLookup)
	if err := json.Unmarshal(val, &lookup); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lockdowns from cache: %w", err)
	}
	return lookup, nil
}

// SetLookupCache сохраняет справочник в Redis
func (r *LockdownRepository) SetLookupCache(ctx context.Context, lookup models.LockdownLookup) error {
	val, err := json.Marshal(lookup)
	if err != nil {
		return fmt.Errorf("failed to marshal lockdowns for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, lookupCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set lockdowns in cache: %w", err)
	}
	return nil
}

// InvalidateLookupCache удаляет справочник из Redis кэша
func (r *LockdownRepository) InvalidateLookupCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, lookupCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate lockdowns cache: %w", err)
	}
	return nil
}

func toInterval(start time.Time, end *time.Time, malformed *bool) models.LockdownInterval {
	interval := models.LockdownInterval{Start: start.UTC(), End: end}
	if end != nil {
		utc := end.UTC()
		interval.End = &utc
	}
	if malformed != nil {
		interval.Malformed = *malformed
	}
	return interval
}
