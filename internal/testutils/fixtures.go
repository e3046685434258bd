package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// TestSessionID is the default session id used by sheet fixtures
const TestSessionID = "sheet_test-001"

// CreateHillDwarfFighter creates a level 1 hill dwarf fighter wearing chain mail
func CreateHillDwarfFighter() *dnd5e.Selection {
	return builders.NewSelectionBuilder().
		WithAbilityScores(15, 12, 14, 10, 13, 8).
		WithRace(dnd5e.RaceDwarf, dnd5e.SubraceHillDwarf).
		WithClass(dnd5e.ClassFighter, 1).
		WithBackground(dnd5e.BackgroundSoldier).
		WithArmor(dnd5e.ArmorChainMail).
		WithShield().
		Build()
}

// CreateRogueWizard creates a rogue 3 / wizard 2 multiclass with no armor
func CreateRogueWizard() *dnd5e.Selection {
	return builders.NewSelectionBuilder().
		WithAbilityScores(10, 16, 12, 14, 10, 10).
		WithRace(dnd5e.RaceHuman, "").
		WithClass(dnd5e.ClassRogue, 3).
		WithClass(dnd5e.ClassWizard, 2).
		WithBackground(dnd5e.BackgroundCriminal).
		Build()
}

// CreateLeatherArmorDetail returns the resolved detail for leather armor
func CreateLeatherArmorDetail() *dnd5e.ArmorDetail {
	return &dnd5e.ArmorDetail{
		ArmorID:  dnd5e.ArmorLeather,
		Name:     "Leather Armor",
		BaseAC:   11,
		Category: dnd5e.ArmorCategoryLight,
	}
}

// CreateChainMailDetail returns the resolved detail for chain mail
func CreateChainMailDetail() *dnd5e.ArmorDetail {
	zero := 0
	return &dnd5e.ArmorDetail{
		ArmorID:  dnd5e.ArmorChainMail,
		Name:     "Chain Mail",
		BaseAC:   16,
		Category: dnd5e.ArmorCategoryHeavy,
		DexCap:   &zero,
	}
}
