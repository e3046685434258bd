package dnd5e

// ArmorCategory is the armor class rule family of a piece of armor
type ArmorCategory string

// ArmorDetail is the externally fetched data needed to compute armor class
type ArmorDetail struct {
	ArmorID  string        `json:"armor_id"`
	Name     string        `json:"name"`
	BaseAC   int           `json:"base_ac"`
	Category ArmorCategory `json:"category"`
	// DexCap limits the dexterity bonus. Nil means no cap.
	DexCap *int `json:"dex_cap,omitempty"`
}

// ArmorDetailStatus reports where the armor detail lookup stands
type ArmorDetailStatus string

// Armor detail states
const (
	ArmorDetailNone        ArmorDetailStatus = "none"
	ArmorDetailPending     ArmorDetailStatus = "pending"
	ArmorDetailReady       ArmorDetailStatus = "ready"
	ArmorDetailUnavailable ArmorDetailStatus = "unavailable"
)

// ChoiceSlot is an open "choose N from" proficiency slot offered by a source
type ChoiceSlot struct {
	Source  string   `json:"source" yaml:"source"`
	Choose  int      `json:"choose" yaml:"choose"`
	Options []string `json:"options" yaml:"options"`
}

// ProficiencyBundle is the resolved set of proficiencies of one kind (tools or skills)
type ProficiencyBundle struct {
	Fixed            []string     `json:"fixed"`
	AvailableChoices []ChoiceSlot `json:"available_choices,omitempty"`
	Selected         []string     `json:"selected,omitempty"`

	// Per-source contributions, kept for audit
	FromRace       []string `json:"from_race,omitempty"`
	FromBackground []string `json:"from_background,omitempty"`
	FromClasses    []string `json:"from_classes,omitempty"`
}

// All returns fixed then selected keys
func (b *ProficiencyBundle) All() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.Fixed)+len(b.Selected))
	out = append(out, b.Fixed...)
	return append(out, b.Selected...)
}

// DerivedStats are the computed combat statistics with their breakdowns
type DerivedStats struct {
	HitPoints           int      `json:"hit_points" yaml:"hit_points"`
	ArmorClass          int      `json:"armor_class" yaml:"armor_class"`
	Initiative          int      `json:"initiative" yaml:"initiative"`
	HitPointsBreakdown  []string `json:"hit_points_breakdown" yaml:"hit_points_breakdown"`
	ArmorClassBreakdown []string `json:"armor_class_breakdown" yaml:"armor_class_breakdown"`
	InitiativeBreakdown []string `json:"initiative_breakdown" yaml:"initiative_breakdown"`

	AbilityScores    AbilityScores     `json:"ability_scores" yaml:"ability_scores"`
	AbilityModifiers map[string]int    `json:"ability_modifiers" yaml:"ability_modifiers"`
	ArmorStatus      ArmorDetailStatus `json:"armor_status" yaml:"armor_status"`
}
