package v1alpha1

import (
	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// Request and response field names
const (
	fieldSelection     = "selection"
	fieldSessionID     = "session_id"
	fieldRollHitPoints = "roll_hit_points"
	fieldWaitForArmor  = "wait_for_armor"
	fieldResult        = "result"
)

// decodeSelection decodes the selection field of a request. Numbers arrive as
// float64 and strings such as "14" are accepted for ints.
func decodeSelection(fields map[string]any) (*dnd5e.Selection, error) {
	raw, ok := fields[fieldSelection]
	if !ok || raw == nil {
		return nil, nil
	}

	var selection dnd5e.Selection
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
		Result:           &selection,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create selection decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid selection")
	}

	return &selection, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func boolField(fields map[string]any, key string) bool {
	b, _ := fields[key].(bool)
	return b
}

func stringsToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func abilityScoresToMap(scores *dnd5e.AbilityScores) map[string]any {
	out := make(map[string]any, len(dnd5e.AllAbilities))
	for _, ability := range dnd5e.AllAbilities {
		out[ability] = scores.Get(ability)
	}
	return out
}

func statsToMap(stats *dnd5e.DerivedStats) map[string]any {
	if stats == nil {
		return nil
	}

	mods := make(map[string]any, len(stats.AbilityModifiers))
	for ability, mod := range stats.AbilityModifiers {
		mods[ability] = mod
	}

	return map[string]any{
		"hit_points":            stats.HitPoints,
		"armor_class":           stats.ArmorClass,
		"initiative":            stats.Initiative,
		"hit_points_breakdown":  stringsToAny(stats.HitPointsBreakdown),
		"armor_class_breakdown": stringsToAny(stats.ArmorClassBreakdown),
		"initiative_breakdown":  stringsToAny(stats.InitiativeBreakdown),
		"ability_scores":        abilityScoresToMap(&stats.AbilityScores),
		"ability_modifiers":     mods,
		"armor_status":          string(stats.ArmorStatus),
	}
}

func bundleToMap(bundle *dnd5e.ProficiencyBundle) map[string]any {
	if bundle == nil {
		return nil
	}

	slots := make([]any, len(bundle.AvailableChoices))
	for i, slot := range bundle.AvailableChoices {
		slots[i] = map[string]any{
			"source":  slot.Source,
			"choose":  slot.Choose,
			"options": stringsToAny(slot.Options),
		}
	}

	return map[string]any{
		"fixed":             stringsToAny(bundle.Fixed),
		"available_choices": slots,
		"selected":          stringsToAny(bundle.Selected),
		"from_race":         stringsToAny(bundle.FromRace),
		"from_background":   stringsToAny(bundle.FromBackground),
		"from_classes":      stringsToAny(bundle.FromClasses),
	}
}

func resultToMap(result *sheetsvc.Result) map[string]any {
	if result == nil {
		return nil
	}

	return map[string]any{
		"stats":        statsToMap(result.Stats),
		"tools":        bundleToMap(result.Tools),
		"skills":       bundleToMap(result.Skills),
		"warnings":     stringsToAny(result.Warnings),
		"armor_status": string(result.ArmorStatus),
		"revision":     result.Revision,
	}
}

func selectionToMap(selection *dnd5e.Selection) map[string]any {
	if selection == nil {
		return nil
	}

	classes := make([]any, len(selection.Classes))
	for i, c := range selection.Classes {
		classes[i] = map[string]any{
			"class_id": c.ClassID,
			"level":    c.Level,
		}
	}

	improvements := make(map[string]any, len(selection.Feats.AbilityImprovements))
	for featID, bonuses := range selection.Feats.AbilityImprovements {
		inner := make(map[string]any, len(bonuses))
		for ability, bonus := range bonuses {
			inner[ability] = bonus
		}
		improvements[featID] = inner
	}

	out := map[string]any{
		"classes":       classes,
		"race_id":       selection.RaceID,
		"subrace_id":    selection.SubraceID,
		"background_id": selection.BackgroundID,
		"feats": map[string]any{
			"feat_ids":             stringsToAny(selection.Feats.FeatIDs),
			"ability_improvements": improvements,
		},
		"equipment": map[string]any{
			"armor_id": selection.Equipment.ArmorID,
			"shield":   selection.Equipment.Shield,
		},
		"chosen_tools":  stringsToAny(selection.ChosenTools),
		"chosen_skills": stringsToAny(selection.ChosenSkills),
	}
	if selection.AbilityScores != nil {
		out["ability_scores"] = abilityScoresToMap(selection.AbilityScores)
	}

	return out
}

// newResponse encodes fields as a Struct
func newResponse(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
