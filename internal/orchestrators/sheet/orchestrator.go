package sheet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/metrics"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// SessionIDPrefix prefixes generated session ids
const SessionIDPrefix = "sheet"

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Engine       engine.Engine
	Catalog      *catalog.Catalog
	ArmorFetcher ArmorDetailFetcher
	IDGenerator  idgen.Generator
	EventBus     events.EventBus  // Optional
	Metrics      *metrics.Manager // Optional
	FetchTimeout time.Duration    // Optional
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.ArmorFetcher == nil {
		vb.RequiredField("ArmorFetcher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet service
type Orchestrator struct {
	engine       engine.Engine
	catalog      *catalog.Catalog
	fetcher      ArmorDetailFetcher
	idGen        idgen.Generator
	bus          events.EventBus
	metrics      *metrics.Manager
	fetchTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*Recalculator
}

// Verify that Orchestrator implements the sheet service
var _ sheetsvc.Service = (*Orchestrator)(nil)

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &Orchestrator{
		engine:       cfg.Engine,
		catalog:      cfg.Catalog,
		fetcher:      cfg.ArmorFetcher,
		idGen:        cfg.IDGenerator,
		bus:          cfg.EventBus,
		metrics:      cfg.Metrics,
		fetchTimeout: timeout,
		sessions:     make(map[string]*Recalculator),
	}, nil
}

// ComputeSheet computes a sheet in one pass. The armor lookup runs inline and
// a failed lookup degrades to unarmored.
func (o *Orchestrator) ComputeSheet(ctx context.Context, input *sheetsvc.ComputeSheetInput) (*sheetsvc.ComputeSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	start := time.Now()
	selection := input.Selection.Clone()
	warnings := NormalizeSelection(o.catalog, selection)

	detail, status := o.lookupArmor(ctx, selection.Equipment)

	out, err := o.engine.Compute(ctx, &engine.ComputeInput{
		Selection:     selection,
		ArmorDetail:   detail,
		ArmorStatus:   status,
		RollHitPoints: input.RollHitPoints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sheet")
	}
	o.metrics.RecordRecalculation(time.Since(start))

	return &sheetsvc.ComputeSheetOutput{
		Result: &sheetsvc.Result{
			Stats:       out.Stats,
			Tools:       out.Tools,
			Skills:      out.Skills,
			Warnings:    append(warnings, out.Warnings...),
			ArmorStatus: status,
			Revision:    1,
		},
	}, nil
}

func (o *Orchestrator) lookupArmor(ctx context.Context, equipment dnd5e.EquipmentState) (*dnd5e.ArmorDetail, dnd5e.ArmorDetailStatus) {
	if !equipment.HasArmor() {
		return nil, dnd5e.ArmorDetailNone
	}

	fetchCtx, cancel := context.WithTimeout(ctx, o.fetchTimeout)
	defer cancel()

	detail, err := o.fetcher.FetchArmorDetail(fetchCtx, equipment.ArmorID)
	if err != nil {
		slog.WarnContext(ctx, "Armor detail unavailable, computing as unarmored",
			"armor_id", equipment.ArmorID,
			"error", err)
		return nil, dnd5e.ArmorDetailUnavailable
	}

	return detail, dnd5e.ArmorDetailReady
}

// OpenSession starts a live session, optionally seeded with a selection
func (o *Orchestrator) OpenSession(ctx context.Context, input *sheetsvc.OpenSessionInput) (*sheetsvc.OpenSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sessionID := o.idGen.Generate()
	recalc, err := NewRecalculator(&RecalculatorConfig{
		SessionID:    sessionID,
		Engine:       o.engine,
		Catalog:      o.catalog,
		Fetcher:      o.fetcher,
		EventBus:     o.bus,
		Metrics:      o.metrics,
		FetchTimeout: o.fetchTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recalculator")
	}

	selection := input.Selection
	if selection == nil {
		selection = &dnd5e.Selection{}
	}

	result, err := recalc.Update(ctx, selection)
	if err != nil {
		recalc.Close()
		return nil, errors.Wrap(err, "failed to compute initial sheet")
	}

	o.mu.Lock()
	o.sessions[sessionID] = recalc
	o.mu.Unlock()
	o.metrics.SessionOpened()

	slog.InfoContext(ctx, "Opened sheet session", "session_id", sessionID)

	return &sheetsvc.OpenSessionOutput{
		SessionID: sessionID,
		Result:    result,
	}, nil
}

// UpdateSelection replaces a session's selection
func (o *Orchestrator) UpdateSelection(ctx context.Context, input *sheetsvc.UpdateSelectionInput) (*sheetsvc.UpdateSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	recalc, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := recalc.Update(ctx, input.Selection)
	if err != nil {
		return nil, err
	}

	if input.WaitForArmor {
		recalc.Wait()
		result = recalc.Latest()
	}

	return &sheetsvc.UpdateSelectionOutput{Result: result}, nil
}

// GetSession returns a session's selection and newest result
func (o *Orchestrator) GetSession(_ context.Context, input *sheetsvc.GetSessionInput) (*sheetsvc.GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	recalc, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &sheetsvc.GetSessionOutput{
		Selection: recalc.Selection(),
		Result:    recalc.Latest(),
	}, nil
}

// CloseSession stops a session and forgets it
func (o *Orchestrator) CloseSession(ctx context.Context, input *sheetsvc.CloseSessionInput) (*sheetsvc.CloseSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	recalc, ok := o.sessions[input.SessionID]
	delete(o.sessions, input.SessionID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("sheet session %s not found", input.SessionID).
			WithMeta("session_id", input.SessionID)
	}

	recalc.Close()
	o.metrics.SessionClosed()

	slog.InfoContext(ctx, "Closed sheet session", "session_id", input.SessionID)

	return &sheetsvc.CloseSessionOutput{}, nil
}

// Shutdown closes every open session
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	sessions := o.sessions
	o.sessions = make(map[string]*Recalculator)
	o.mu.Unlock()

	for _, recalc := range sessions {
		recalc.Close()
		o.metrics.SessionClosed()
	}
}

func (o *Orchestrator) session(sessionID string) (*Recalculator, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	recalc, ok := o.sessions[sessionID]
	o.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("sheet session %s not found", sessionID).
			WithMeta("session_id", sessionID)
	}

	return recalc, nil
}
