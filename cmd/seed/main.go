package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/lockdown_map/internal/config"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/repository"
	"github.com/shenikar/lockdown_map/internal/seed"
	"github.com/shenikar/lockdown_map/pkg/logger"
	"github.com/shenikar/lockdown_map/pkg/postgres"
	redisclient "github.com/shenikar/lockdown_map/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	file    string
	migrate bool
	dryRun  bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load lockdown records from a JSON document into the database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "data/lockdowns.json", "path to the lockdowns document, - for stdin")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", true, "apply database migrations before seeding")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "parse and summarize the document without writing")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}
}

func run(ctx context.Context, opts *options) error {
	records, err := readRecords(opts.file)
	if err != nil {
		return err
	}

	if opts.dryRun {
		log := logger.New("info", "text")
		summary := seed.Summarize(records, time.Now())
		log.WithFields(logrus.Fields{
			"regions": len(records),
			"unknown": summary[models.StatusUnknown],
			"none":    summary[models.StatusNone],
			"active":  summary[models.StatusActive],
			"expired": summary[models.StatusExpired],
		}).Info("Dry run, nothing written")
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if opts.migrate {
		if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return err
		}
		log.Info("Database migrations applied successfully")
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()

	repo := repository.NewLockdownRepository(dbpool, redisClient, cfg.LockdownCacheTTL)
	return seed.Load(ctx, repo, records, log)
}

func readRecords(path string) ([]*models.RegionLockdownRecord, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return seed.Decode(r)
}
