package stats

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Initiative is the dexterity modifier plus the initiative bonus of every feat held.
// Feats are matched by lookup key, so "FEAT_ALERT" and "alert" are the same feat and count once.
func Initiative(dexMod int, feats dnd5e.FeatSet, cat *catalog.Catalog) (int, []string) {
	total := dexMod
	breakdown := []string{fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))}

	if cat == nil {
		return total, breakdown
	}

	seen := make(map[string]struct{}, len(feats.FeatIDs))
	for _, id := range feats.FeatIDs {
		key := dnd5e.NormalizeID(id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		feat, ok := cat.Feat(key)
		if !ok || feat.InitiativeBonus == 0 {
			continue
		}
		total += feat.InitiativeBonus
		breakdown = append(breakdown, fmt.Sprintf("%s %s", feat.Name, modifiers.Format(feat.InitiativeBonus)))
	}

	return total, breakdown
}
