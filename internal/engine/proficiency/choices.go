package proficiency

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// ApplyChoices fills the bundle's open slots and the user's selections.
// Offered options already granted as fixed are removed from the slots. Chosen keys
// are canonicalized; a key that is already fixed, not offered, repeated, or has no
// slot left is dropped and reported as a warning.
func ApplyChoices(bundle *dnd5e.ProficiencyBundle, slots []dnd5e.ChoiceSlot, chosen []string) []string {
	if bundle == nil {
		return nil
	}

	bundle.AvailableChoices = make([]dnd5e.ChoiceSlot, 0, len(slots))
	for _, slot := range slots {
		options := make([]string, 0, len(slot.Options))
		for _, option := range slot.Options {
			if !slices.Contains(bundle.Fixed, option) {
				options = append(options, option)
			}
		}
		slot.Options = options
		bundle.AvailableChoices = append(bundle.AvailableChoices, slot)
	}

	var warnings []string
	var candidates []string
	for _, raw := range chosen {
		key := Canonicalize(raw)
		switch {
		case key == "":
			continue
		case slices.Contains(bundle.Fixed, key):
			warnings = append(warnings, fmt.Sprintf("%s is already granted, choice ignored", key))
		case slices.Contains(candidates, key):
			warnings = append(warnings, fmt.Sprintf("%s chosen more than once", key))
		case !offeredByAny(bundle.AvailableChoices, key):
			warnings = append(warnings, fmt.Sprintf("%s is not offered by any source", key))
		default:
			candidates = append(candidates, key)
		}
	}

	placed := placeChoices(bundle.AvailableChoices, candidates)
	bundle.Selected = nil
	for i, key := range candidates {
		if placed[i] {
			bundle.Selected = append(bundle.Selected, key)
		} else {
			warnings = append(warnings, fmt.Sprintf("%s ignored, no open slot left", key))
		}
	}

	return warnings
}

func offeredByAny(slots []dnd5e.ChoiceSlot, key string) bool {
	for _, slot := range slots {
		if slices.Contains(slot.Options, key) {
			return true
		}
	}
	return false
}

// placeChoices assigns keys to slots, earlier keys first, moving already
// placed keys to another slot when that frees room for a later one. A key is
// only dropped when no rearrangement can fit it.
func placeChoices(slots []dnd5e.ChoiceSlot, keys []string) []bool {
	assigned := make([][]int, len(slots))

	var place func(k int, visited []bool) bool
	place = func(k int, visited []bool) bool {
		for i, slot := range slots {
			if visited[i] || !slices.Contains(slot.Options, keys[k]) {
				continue
			}
			visited[i] = true
			if len(assigned[i]) < slot.Choose {
				assigned[i] = append(assigned[i], k)
				return true
			}
			for n, other := range assigned[i] {
				if place(other, visited) {
					assigned[i][n] = k
					return true
				}
			}
		}
		return false
	}

	placed := make([]bool, len(keys))
	for k := range keys {
		placed[k] = place(k, make([]bool, len(slots)))
	}
	return placed
}
