// Package sheet implements the sheet orchestrator and the live recalculation
// of a character sheet as its selection changes
package sheet

//go:generate mockgen -destination=mock/mock_fetcher.go -package=sheetorchestratormock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet ArmorDetailFetcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/metrics"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// DefaultFetchTimeout bounds a single armor detail lookup
const DefaultFetchTimeout = 10 * time.Second

// ArmorDetailFetcher looks up the detail of an armor id
type ArmorDetailFetcher interface {
	FetchArmorDetail(ctx context.Context, armorID string) (*dnd5e.ArmorDetail, error)
}

// RecalculatorConfig holds the dependencies of a Recalculator
type RecalculatorConfig struct {
	SessionID string
	Engine    engine.Engine
	Catalog   *catalog.Catalog
	Fetcher   ArmorDetailFetcher
	EventBus  events.EventBus  // Optional
	Metrics   *metrics.Manager // Optional
	// FetchTimeout bounds each armor lookup (defaults to DefaultFetchTimeout)
	FetchTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RecalculatorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SessionID", c.SessionID, vb)
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.FetchTimeout < 0 {
		vb.InvalidField("FetchTimeout", "cannot be negative")
	}

	return vb.Build()
}

// armorCache is the only state kept between computations
type armorCache struct {
	armorID string
	status  dnd5e.ArmorDetailStatus
	detail  *dnd5e.ArmorDetail
}

// fetchToken identifies the selection a fetch was started for
type fetchToken struct {
	generation uint64
	armorID    string
}

// Recalculator owns one selection snapshot and recomputes the sheet when it
// changes. Armor details are fetched asynchronously; a fetch whose token no
// longer matches the current generation and armor id is discarded.
type Recalculator struct {
	sessionID    string
	engine       engine.Engine
	catalog      *catalog.Catalog
	fetcher      ArmorDetailFetcher
	bus          events.EventBus
	metrics      *metrics.Manager
	fetchTimeout time.Duration

	// lifetime is canceled by Close and stops in-flight fetches
	lifetime context.Context
	stop     context.CancelFunc

	mu         sync.Mutex
	settled    *sync.Cond
	inflight   int
	closed     bool
	generation uint64
	selection  *dnd5e.Selection
	warnings   []string
	armor      armorCache
	revision   int
	latest     *sheetsvc.Result

	// publishMu orders recalculation events; a revision older than the last
	// one published is never sent
	publishMu     sync.Mutex
	lastPublished int
}

// NewRecalculator creates a recalculator with an empty selection
func NewRecalculator(cfg *RecalculatorConfig) (*Recalculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.FetchTimeout
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}

	lifetime, stop := context.WithCancel(context.Background())
	r := &Recalculator{
		sessionID:    cfg.SessionID,
		engine:       cfg.Engine,
		catalog:      cfg.Catalog,
		fetcher:      cfg.Fetcher,
		bus:          cfg.EventBus,
		metrics:      cfg.Metrics,
		fetchTimeout: timeout,
		lifetime:     lifetime,
		stop:         stop,
		armor:        armorCache{status: dnd5e.ArmorDetailNone},
	}
	r.settled = sync.NewCond(&r.mu)

	return r, nil
}

// SessionID returns the id this recalculator publishes events under
func (r *Recalculator) SessionID() string {
	return r.sessionID
}

// Update replaces the selection snapshot and recomputes when anything changed.
// A subrace that does not belong to the race is cleared with a warning before
// proficiencies are resolved.
func (r *Recalculator) Update(ctx context.Context, selection *dnd5e.Selection) (*sheetsvc.Result, error) {
	if selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	snapshot := selection.Clone()
	warnings := NormalizeSelection(r.catalog, snapshot)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, errors.FailedPrecondition("sheet session is closed")
	}

	if r.latest != nil && r.selection.Equal(snapshot) {
		latest := r.latest
		r.mu.Unlock()
		return latest, nil
	}

	armorChanged := r.selection == nil ||
		r.selection.Equipment.NormalizedArmorID() != snapshot.Equipment.NormalizedArmorID()

	r.selection = snapshot
	r.warnings = warnings

	if armorChanged {
		r.generation++
		if snapshot.Equipment.HasArmor() {
			r.armor = armorCache{
				armorID: snapshot.Equipment.NormalizedArmorID(),
				status:  dnd5e.ArmorDetailPending,
			}
			r.startFetch(ctx, fetchToken{generation: r.generation, armorID: r.armor.armorID}, snapshot.Equipment.ArmorID)
		} else {
			r.armor = armorCache{status: dnd5e.ArmorDetailNone}
		}
	}

	result, err := r.recompute(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	r.publishRecalculated(ctx, result)

	return result, nil
}

// Latest returns the newest result, or nil before the first Update
func (r *Recalculator) Latest() *sheetsvc.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Selection returns a copy of the current snapshot
func (r *Recalculator) Selection() *dnd5e.Selection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selection.Clone()
}

// Wait blocks until every started armor fetch has completed
func (r *Recalculator) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for r.inflight > 0 {
		r.settled.Wait()
	}
}

// Close cancels in-flight fetches. Later updates fail and late fetch results
// are dropped.
func (r *Recalculator) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.stop()
}

// startFetch must be called with r.mu held
func (r *Recalculator) startFetch(ctx context.Context, token fetchToken, armorID string) {
	r.inflight++

	// the fetch outlives the request that triggered it
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.fetchTimeout)
	stopOnClose := context.AfterFunc(r.lifetime, cancel)

	go func() {
		defer cancel()
		defer stopOnClose()

		detail, err := r.fetcher.FetchArmorDetail(fetchCtx, armorID)
		r.completeFetch(fetchCtx, token, detail, err)
	}()
}

func (r *Recalculator) completeFetch(ctx context.Context, token fetchToken, detail *dnd5e.ArmorDetail, fetchErr error) {
	defer r.fetchDone()

	result, current, stale := r.applyFetch(ctx, token, detail, fetchErr)
	if stale {
		r.discardStale(ctx, token, current)
		return
	}
	if result == nil {
		return
	}

	if err := rpgtoolkit.PublishSheetEvent(ctx, r.bus, rpgtoolkit.EventArmorDetailUpdated, r.sessionID, map[string]any{
		"armor_id":     token.armorID,
		"armor_status": string(result.ArmorStatus),
	}); err != nil {
		slog.WarnContext(ctx, "Failed to publish armor detail event", "error", err)
	}
	r.publishRecalculated(ctx, result)
}

// applyFetch caches the fetch outcome and recomputes. It reports the current
// armor id instead when the token is stale.
func (r *Recalculator) applyFetch(ctx context.Context, token fetchToken, detail *dnd5e.ArmorDetail, fetchErr error) (*sheetsvc.Result, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, "", false
	}

	if token.generation != r.generation || token.armorID != r.armor.armorID {
		return nil, r.armor.armorID, true
	}

	if fetchErr != nil {
		slog.WarnContext(ctx, "Armor detail unavailable, computing as unarmored",
			"session_id", r.sessionID,
			"armor_id", token.armorID,
			"error", fetchErr)
		r.armor.status = dnd5e.ArmorDetailUnavailable
		r.armor.detail = nil
	} else {
		r.armor.status = dnd5e.ArmorDetailReady
		r.armor.detail = detail
	}

	result, err := r.recompute(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to recompute after armor fetch",
			"session_id", r.sessionID,
			"error", err)
		return nil, "", false
	}

	return result, "", false
}

func (r *Recalculator) fetchDone() {
	r.mu.Lock()
	r.inflight--
	r.settled.Broadcast()
	r.mu.Unlock()
}

func (r *Recalculator) discardStale(ctx context.Context, token fetchToken, current string) {
	r.metrics.RecordStaleArmorResult()

	slog.DebugContext(ctx, "Discarding stale armor detail",
		"session_id", r.sessionID,
		"armor_id", token.armorID,
		"current_armor_id", current,
		"generation", token.generation)

	if err := rpgtoolkit.PublishSheetEvent(ctx, r.bus, rpgtoolkit.EventArmorResultStale, r.sessionID, map[string]any{
		"armor_id":         token.armorID,
		"current_armor_id": current,
		"generation":       int(token.generation),
	}); err != nil {
		slog.WarnContext(ctx, "Failed to publish stale armor event", "error", err)
	}
}

// recompute must be called with r.mu held
func (r *Recalculator) recompute(ctx context.Context) (*sheetsvc.Result, error) {
	start := time.Now()

	out, err := r.engine.Compute(ctx, &engine.ComputeInput{
		Selection:   r.selection,
		ArmorDetail: r.armor.detail,
		ArmorStatus: r.armor.status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sheet")
	}

	r.revision++
	warnings := make([]string, 0, len(r.warnings)+len(out.Warnings))
	warnings = append(warnings, r.warnings...)
	warnings = append(warnings, out.Warnings...)

	r.latest = &sheetsvc.Result{
		Stats:       out.Stats,
		Tools:       out.Tools,
		Skills:      out.Skills,
		Warnings:    warnings,
		ArmorStatus: r.armor.status,
		Revision:    r.revision,
	}
	r.metrics.RecordRecalculation(time.Since(start))

	return r.latest, nil
}

func (r *Recalculator) publishRecalculated(ctx context.Context, result *sheetsvc.Result) {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	if result.Revision <= r.lastPublished {
		slog.DebugContext(ctx, "Skipping superseded recalculation event",
			"session_id", r.sessionID,
			"revision", result.Revision,
			"last_published", r.lastPublished)
		return
	}
	r.lastPublished = result.Revision

	data := map[string]any{
		"revision":     result.Revision,
		"armor_status": string(result.ArmorStatus),
	}
	if result.Stats != nil {
		data["hit_points"] = result.Stats.HitPoints
		data["armor_class"] = result.Stats.ArmorClass
		data["initiative"] = result.Stats.Initiative
	}

	if err := rpgtoolkit.PublishSheetEvent(ctx, r.bus, rpgtoolkit.EventSheetRecalculated, r.sessionID, data); err != nil {
		slog.WarnContext(ctx, "Failed to publish recalculation event",
			"session_id", r.sessionID,
			"error", err)
	}
}

// NormalizeSelection clears a subrace that does not belong to the selected
// race and returns the warnings describing what changed
func NormalizeSelection(cat *catalog.Catalog, selection *dnd5e.Selection) []string {
	if selection == nil || selection.SubraceID == "" {
		return nil
	}
	if cat.SubraceBelongs(selection.RaceID, selection.SubraceID) {
		return nil
	}

	warning := fmt.Sprintf("subrace %s does not belong to race %s, cleared", selection.SubraceID, selection.RaceID)
	selection.SubraceID = ""

	return []string{warning}
}
