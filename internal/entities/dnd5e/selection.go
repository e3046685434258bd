// Package dnd5e implements the D&D 5e entities used by the sheet engine
package dnd5e

import (
	"slices"
	"strings"
)

// AbilityScores holds the six base ability scores of a character
type AbilityScores struct {
	Strength     int `json:"strength" yaml:"strength" mapstructure:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity" mapstructure:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution" mapstructure:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence" mapstructure:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom" mapstructure:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma" mapstructure:"charisma"`
}

// Get returns the score for an ability key. Unknown keys return 0.
func (a *AbilityScores) Get(ability string) int {
	if a == nil {
		return 0
	}

	switch strings.ToLower(ability) {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set assigns the score for an ability key. Unknown keys are ignored.
func (a *AbilityScores) Set(ability string, score int) {
	switch strings.ToLower(ability) {
	case AbilityStrength:
		a.Strength = score
	case AbilityDexterity:
		a.Dexterity = score
	case AbilityConstitution:
		a.Constitution = score
	case AbilityIntelligence:
		a.Intelligence = score
	case AbilityWisdom:
		a.Wisdom = score
	case AbilityCharisma:
		a.Charisma = score
	}
}

// ClassSelection is one class taken by the character. The first entry is the starting class.
type ClassSelection struct {
	ClassID string `json:"class_id" yaml:"class_id" mapstructure:"class_id"`
	Level   int    `json:"level" yaml:"level" mapstructure:"level"`
}

// EquipmentState is the equipped armor and shield
type EquipmentState struct {
	ArmorID string `json:"armor_id,omitempty" yaml:"armor_id,omitempty" mapstructure:"armor_id"`
	Shield  bool   `json:"shield,omitempty" yaml:"shield,omitempty" mapstructure:"shield"`
}

// HasArmor reports whether body armor is equipped
func (e EquipmentState) HasArmor() bool {
	id := strings.TrimSpace(e.ArmorID)
	return id != "" && !strings.EqualFold(id, ArmorNone)
}

// NormalizedArmorID returns the armor id, or ArmorNone when nothing is worn
func (e EquipmentState) NormalizedArmorID() string {
	if !e.HasArmor() {
		return ArmorNone
	}
	return strings.TrimSpace(e.ArmorID)
}

// FeatSet holds feat ids plus the ability score improvements chosen for each feat
type FeatSet struct {
	FeatIDs []string `json:"feat_ids,omitempty" yaml:"feat_ids,omitempty" mapstructure:"feat_ids"`
	// AbilityImprovements maps feat id -> ability key -> bonus
	AbilityImprovements map[string]map[string]int `json:"ability_improvements,omitempty" yaml:"ability_improvements,omitempty" mapstructure:"ability_improvements"`
}

// Selection is the full character-selection snapshot the sheet is computed from.
// Treat a Selection as immutable once handed to a recalculator; use Clone to derive a new one.
type Selection struct {
	AbilityScores *AbilityScores   `json:"ability_scores,omitempty" yaml:"ability_scores,omitempty" mapstructure:"ability_scores"`
	Classes       []ClassSelection `json:"classes,omitempty" yaml:"classes,omitempty" mapstructure:"classes"`
	RaceID        string           `json:"race_id,omitempty" yaml:"race_id,omitempty" mapstructure:"race_id"`
	SubraceID     string           `json:"subrace_id,omitempty" yaml:"subrace_id,omitempty" mapstructure:"subrace_id"`
	BackgroundID  string           `json:"background_id,omitempty" yaml:"background_id,omitempty" mapstructure:"background_id"`
	Feats         FeatSet          `json:"feats" yaml:"feats,omitempty" mapstructure:"feats"`
	Equipment     EquipmentState   `json:"equipment" yaml:"equipment,omitempty" mapstructure:"equipment"`

	// Choices made in the interactive proficiency flow
	ChosenTools  []string `json:"chosen_tools,omitempty" yaml:"chosen_tools,omitempty" mapstructure:"chosen_tools"`
	ChosenSkills []string `json:"chosen_skills,omitempty" yaml:"chosen_skills,omitempty" mapstructure:"chosen_skills"`
}

// Clone returns a deep copy of the selection
func (s *Selection) Clone() *Selection {
	if s == nil {
		return nil
	}

	out := &Selection{
		Classes:      slices.Clone(s.Classes),
		RaceID:       s.RaceID,
		SubraceID:    s.SubraceID,
		BackgroundID: s.BackgroundID,
		Equipment:    s.Equipment,
		ChosenTools:  slices.Clone(s.ChosenTools),
		ChosenSkills: slices.Clone(s.ChosenSkills),
		Feats: FeatSet{
			FeatIDs: slices.Clone(s.Feats.FeatIDs),
		},
	}

	if s.AbilityScores != nil {
		scores := *s.AbilityScores
		out.AbilityScores = &scores
	}

	if s.Feats.AbilityImprovements != nil {
		out.Feats.AbilityImprovements = make(map[string]map[string]int, len(s.Feats.AbilityImprovements))
		for featID, bonuses := range s.Feats.AbilityImprovements {
			copied := make(map[string]int, len(bonuses))
			for ability, bonus := range bonuses {
				copied[ability] = bonus
			}
			out.Feats.AbilityImprovements[featID] = copied
		}
	}

	return out
}

// Equal reports whether every field that feeds the derived sheet is the same.
// A nil selection equals an empty one.
func (s *Selection) Equal(other *Selection) bool {
	a, b := s, other
	if a == nil {
		a = &Selection{}
	}
	if b == nil {
		b = &Selection{}
	}

	if a.RaceID != b.RaceID || a.SubraceID != b.SubraceID || a.BackgroundID != b.BackgroundID {
		return false
	}
	if a.Equipment.NormalizedArmorID() != b.Equipment.NormalizedArmorID() || a.Equipment.Shield != b.Equipment.Shield {
		return false
	}
	if !equalScores(a.AbilityScores, b.AbilityScores) {
		return false
	}
	if !slices.Equal(a.Classes, b.Classes) {
		return false
	}
	if !slices.Equal(a.Feats.FeatIDs, b.Feats.FeatIDs) {
		return false
	}
	if !equalImprovements(a.Feats.AbilityImprovements, b.Feats.AbilityImprovements) {
		return false
	}
	return slices.Equal(a.ChosenTools, b.ChosenTools) && slices.Equal(a.ChosenSkills, b.ChosenSkills)
}

func equalScores(a, b *AbilityScores) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalImprovements(a, b map[string]map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for featID, bonuses := range a {
		other, ok := b[featID]
		if !ok || len(other) != len(bonuses) {
			return false
		}
		for ability, bonus := range bonuses {
			if other[ability] != bonus {
				return false
			}
		}
	}
	return true
}
