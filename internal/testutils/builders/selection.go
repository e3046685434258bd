// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// SelectionBuilder provides a fluent interface for building test Selection instances
type SelectionBuilder struct {
	sel *dnd5e.Selection
}

// NewSelectionBuilder creates a new builder with no choices made
func NewSelectionBuilder() *SelectionBuilder {
	return &SelectionBuilder{
		sel: &dnd5e.Selection{},
	}
}

// WithAbilityScores sets the base ability scores
func (b *SelectionBuilder) WithAbilityScores(str, dex, con, intel, wis, cha int) *SelectionBuilder {
	b.sel.AbilityScores = &dnd5e.AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
	return b
}

// WithStandardArray uses 15, 14, 13, 12, 10, 8
func (b *SelectionBuilder) WithStandardArray() *SelectionBuilder {
	return b.WithAbilityScores(15, 14, 13, 12, 10, 8)
}

// WithRace sets the race and subrace
func (b *SelectionBuilder) WithRace(raceID, subraceID string) *SelectionBuilder {
	b.sel.RaceID = raceID
	b.sel.SubraceID = subraceID
	return b
}

// WithClass appends a class entry
func (b *SelectionBuilder) WithClass(classID string, level int) *SelectionBuilder {
	b.sel.Classes = append(b.sel.Classes, dnd5e.ClassSelection{ClassID: classID, Level: level})
	return b
}

// WithBackground sets the background
func (b *SelectionBuilder) WithBackground(backgroundID string) *SelectionBuilder {
	b.sel.BackgroundID = backgroundID
	return b
}

// WithArmor sets the worn armor
func (b *SelectionBuilder) WithArmor(armorID string) *SelectionBuilder {
	b.sel.Equipment.ArmorID = armorID
	return b
}

// WithShield equips a shield
func (b *SelectionBuilder) WithShield() *SelectionBuilder {
	b.sel.Equipment.Shield = true
	return b
}

// WithFeat adds a feat with optional ability improvements
func (b *SelectionBuilder) WithFeat(featID string, improvements map[string]int) *SelectionBuilder {
	b.sel.Feats.FeatIDs = append(b.sel.Feats.FeatIDs, featID)
	if len(improvements) > 0 {
		if b.sel.Feats.AbilityImprovements == nil {
			b.sel.Feats.AbilityImprovements = make(map[string]map[string]int)
		}
		b.sel.Feats.AbilityImprovements[featID] = improvements
	}
	return b
}

// WithChosenTools sets the player's tool choices
func (b *SelectionBuilder) WithChosenTools(tools ...string) *SelectionBuilder {
	b.sel.ChosenTools = tools
	return b
}

// WithChosenSkills sets the player's skill choices
func (b *SelectionBuilder) WithChosenSkills(skills ...string) *SelectionBuilder {
	b.sel.ChosenSkills = skills
	return b
}

// Build returns a copy of the built selection
func (b *SelectionBuilder) Build() *dnd5e.Selection {
	return b.sel.Clone()
}
