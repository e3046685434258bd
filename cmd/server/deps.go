package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/metrics"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/armor"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	armordetail "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail"
)

// dependencies is everything a command needs to compute sheets
type dependencies struct {
	sheets  *sheet.Orchestrator
	metrics *metrics.Manager
	cleanup func()
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{Catalog: cat})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.DND5eBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		CacheTTL:    cfg.APICacheTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	metricsManager := metrics.NewManager()
	cleanup := func() {}

	var repo armordetail.Repository
	if cfg.RedisAddr != "" {
		redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.WarnContext(ctx, "Redis unreachable, armor cache will miss until it recovers",
				"redis_addr", cfg.RedisAddr,
				"error", err)
		}
		cleanup = func() { _ = redisClient.Close() }

		repo, err = armordetail.NewRedis(&armordetail.RedisConfig{
			Client: redisClient,
			TTL:    cfg.ArmorCacheTTL,
		})
		if err != nil {
			cleanup()
			return nil, errors.Wrap(err, "failed to create armor detail repository")
		}
	}

	armorOrchestrator, err := armor.NewOrchestrator(&armor.Config{
		ExternalClient: externalClient,
		Repository:     repo,
		Metrics:        metricsManager,
	})
	if err != nil {
		cleanup()
		return nil, errors.Wrap(err, "failed to create armor orchestrator")
	}

	bus := events.NewBus()
	rpgtoolkit.LogSheetEvents(bus, slog.Default())

	sheets, err := sheet.NewOrchestrator(&sheet.Config{
		Engine:       engine,
		Catalog:      cat,
		ArmorFetcher: armorOrchestrator,
		IDGenerator:  idgen.NewUUID(sheet.SessionIDPrefix),
		EventBus:     bus,
		Metrics:      metricsManager,
		FetchTimeout: cfg.FetchTimeout,
	})
	if err != nil {
		cleanup()
		return nil, errors.Wrap(err, "failed to create sheet orchestrator")
	}

	return &dependencies{
		sheets:  sheets,
		metrics: metricsManager,
		cleanup: func() {
			sheets.Shutdown()
			cleanup()
		},
	}, nil
}
