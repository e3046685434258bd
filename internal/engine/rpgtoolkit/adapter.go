// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/proficiency"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Adapter implements the engine.Engine interface on top of the catalog calculators
type Adapter struct {
	diceRoller dice.Roller
	resolver   *proficiency.Resolver
	calculator *stats.Calculator
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	Catalog *catalog.Catalog
	// DiceRoller is used for rolled hit points; defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Adapter{
		diceRoller: roller,
		resolver:   proficiency.NewResolver(cfg.Catalog),
		calculator: stats.NewCalculator(cfg.Catalog),
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateAbilityModifier calculates the D&D 5e ability modifier for a given score
func (a *Adapter) CalculateAbilityModifier(score int) int {
	return modifiers.Modifier(score)
}

// Compute builds the derived stats and both proficiency bundles from scratch
func (a *Adapter) Compute(ctx context.Context, input *engine.ComputeInput) (*engine.ComputeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	selection := input.Selection
	resolveInput := &proficiency.ResolveInput{
		Classes:      selection.Classes,
		RaceID:       selection.RaceID,
		SubraceID:    selection.SubraceID,
		BackgroundID: selection.BackgroundID,
	}

	resolved, err := a.resolver.Resolve(resolveInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve proficiencies")
	}

	slots, err := a.resolver.ChoiceSlots(resolveInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect choice slots")
	}

	var warnings []string
	warnings = append(warnings, proficiency.ApplyChoices(resolved.Tools, slots.Tools, selection.ChosenTools)...)
	warnings = append(warnings, proficiency.ApplyChoices(resolved.Skills, slots.Skills, selection.ChosenSkills)...)

	statsInput := &stats.ComputeInput{
		Selection:   selection,
		ArmorDetail: input.ArmorDetail,
		ArmorStatus: input.ArmorStatus,
	}
	if input.RollHitPoints {
		statsInput.Roller = a.diceRoller
	}

	derived := a.calculator.Compute(statsInput)

	slog.DebugContext(ctx, "Computed sheet",
		"hit_points", derived.HitPoints,
		"armor_class", derived.ArmorClass,
		"initiative", derived.Initiative,
		"armor_status", derived.ArmorStatus,
		"warnings", len(warnings))

	return &engine.ComputeOutput{
		Stats:    derived,
		Tools:    resolved.Tools,
		Skills:   resolved.Skills,
		Warnings: warnings,
	}, nil
}
