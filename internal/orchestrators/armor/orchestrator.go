// Package armor resolves armor details through the cache and the D&D 5e API
package armor

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/metrics"
	armordetail "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail"
)

// Config holds the dependencies for the armor orchestrator
type Config struct {
	ExternalClient external.Client
	// Repository caches details between lookups (optional)
	Repository armordetail.Repository
	// Metrics records fetch results (optional)
	Metrics *metrics.Manager
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}

	return vb.Build()
}

// Orchestrator looks up armor details, sharing in-flight API calls
type Orchestrator struct {
	client  external.Client
	repo    armordetail.Repository
	metrics *metrics.Manager
	group   singleflight.Group
}

// NewOrchestrator creates a new armor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		client:  cfg.ExternalClient,
		repo:    cfg.Repository,
		metrics: cfg.Metrics,
	}, nil
}

// FetchArmorDetail returns the detail for armorID. Cache failures are logged
// and never fail the lookup. Concurrent lookups of the same armor share one
// API call, which runs detached from any single caller; each caller stops
// waiting when its own context ends.
func (o *Orchestrator) FetchArmorDetail(ctx context.Context, armorID string) (*dnd5e.ArmorDetail, error) {
	key := dnd5e.NormalizeID(armorID)
	if key == "" || key == dnd5e.ArmorNone {
		return nil, errors.InvalidArgument("armor ID is required")
	}

	if detail := o.fromCache(ctx, armorID); detail != nil {
		o.metrics.RecordArmorFetch(metrics.FetchResultCached)
		return detail, nil
	}

	callCtx := context.WithoutCancel(ctx)
	ch := o.group.DoChan(key, func() (any, error) {
		return o.fetchAndCache(callCtx, armorID)
	})

	select {
	case <-ctx.Done():
		o.metrics.RecordArmorFetch(metrics.FetchResultUnavailable)
		return nil, errors.Wrapf(ctx.Err(), "armor lookup for %s abandoned", armorID)
	case res := <-ch:
		if res.Err != nil {
			o.metrics.RecordArmorFetch(metrics.FetchResultUnavailable)
			return nil, res.Err
		}
		detail, _ := res.Val.(*dnd5e.ArmorDetail)
		if detail == nil {
			o.metrics.RecordArmorFetch(metrics.FetchResultUnavailable)
			return nil, errors.NotFoundf("armor %s not found", armorID)
		}
		o.metrics.RecordArmorFetch(metrics.FetchResultReady)

		// the shared detail belongs to every waiter
		cp := *detail
		cp.ArmorID = armorID
		return &cp, nil
	}
}

// fetchAndCache runs once per shared call
func (o *Orchestrator) fetchAndCache(ctx context.Context, armorID string) (*dnd5e.ArmorDetail, error) {
	detail, err := o.client.GetArmorDetail(ctx, armorID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NotFoundf("armor %s not found", armorID)
	}

	o.toCache(ctx, detail)

	return detail, nil
}

func (o *Orchestrator) fromCache(ctx context.Context, armorID string) *dnd5e.ArmorDetail {
	if o.repo == nil {
		return nil
	}

	out, err := o.repo.Get(ctx, armordetail.GetInput{ArmorID: armorID})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "Failed to read cached armor detail",
				"armor_id", armorID,
				"error", err)
		}
		return nil
	}

	slog.DebugContext(ctx, "Armor detail served from cache",
		"armor_id", armorID,
		"fetched_at", out.FetchedAt)

	out.Detail.ArmorID = armorID
	return out.Detail
}

func (o *Orchestrator) toCache(ctx context.Context, detail *dnd5e.ArmorDetail) {
	if o.repo == nil {
		return
	}

	if _, err := o.repo.Put(ctx, armordetail.PutInput{Detail: detail}); err != nil {
		slog.WarnContext(ctx, "Failed to cache armor detail",
			"armor_id", detail.ArmorID,
			"error", err)
	}
}
