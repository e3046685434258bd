package stats

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Calculator composes the hit point, armor class and initiative calculators
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a calculator reading class and feat data from cat
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// ComputeInput is everything a stat computation reads
type ComputeInput struct {
	Selection   *dnd5e.Selection
	ArmorDetail *dnd5e.ArmorDetail
	ArmorStatus dnd5e.ArmorDetailStatus
	// Roller switches later levels from average to rolled hit points
	Roller dice.Roller
}

// Compute returns freshly built derived stats. A nil input or selection yields the defaults:
// 0 hit points, AC 10 and initiative 0.
func (c *Calculator) Compute(input *ComputeInput) *dnd5e.DerivedStats {
	if input == nil {
		input = &ComputeInput{}
	}
	selection := input.Selection
	if selection == nil {
		selection = &dnd5e.Selection{}
	}

	status := input.ArmorStatus
	if status == "" {
		status = dnd5e.ArmorDetailNone
	}

	scores := c.AbilityTotals(selection)
	mods := modifiers.AbilityModifiers(&scores)

	out := &dnd5e.DerivedStats{
		AbilityScores:    scores,
		AbilityModifiers: mods,
		ArmorStatus:      status,
	}

	out.HitPoints, out.HitPointsBreakdown = HitPoints(selection.Classes, mods[dnd5e.AbilityConstitution], c.catalog, input.Roller)
	out.ArmorClass, out.ArmorClassBreakdown = ArmorClass(mods[dnd5e.AbilityDexterity], selection.Equipment, input.ArmorDetail, status)
	out.Initiative, out.InitiativeBreakdown = Initiative(mods[dnd5e.AbilityDexterity], selection.Feats, c.catalog)

	return out
}

// AbilityTotals adds race, subrace and feat improvements to the base scores.
// Without base scores every ability is 10 so all modifiers are 0.
func (c *Calculator) AbilityTotals(selection *dnd5e.Selection) dnd5e.AbilityScores {
	if selection == nil || selection.AbilityScores == nil {
		return dnd5e.AbilityScores{
			Strength: 10, Dexterity: 10, Constitution: 10,
			Intelligence: 10, Wisdom: 10, Charisma: 10,
		}
	}

	bonuses := make(map[string][]int, len(dnd5e.AllAbilities))
	if c.catalog != nil {
		if race, ok := c.catalog.Race(selection.RaceID); ok {
			addBonuses(bonuses, race.AbilityBonuses)
		}
		if sub, ok := c.catalog.Subrace(selection.RaceID, selection.SubraceID); ok {
			addBonuses(bonuses, sub.AbilityBonuses)
		}
	}

	held := make(map[string]struct{}, len(selection.Feats.FeatIDs))
	for _, id := range selection.Feats.FeatIDs {
		held[dnd5e.NormalizeID(id)] = struct{}{}
	}
	for featID, improvements := range selection.Feats.AbilityImprovements {
		if _, ok := held[dnd5e.NormalizeID(featID)]; ok {
			addBonuses(bonuses, improvements)
		}
	}

	var totals dnd5e.AbilityScores
	for _, ability := range dnd5e.AllAbilities {
		totals.Set(ability, modifiers.TotalAbilityScore(selection.AbilityScores.Get(ability), bonuses[ability]...))
	}
	return totals
}

func addBonuses(into map[string][]int, bonuses map[string]int) {
	for ability, bonus := range bonuses {
		key := strings.ToLower(ability)
		into[key] = append(into[key], bonus)
	}
}
