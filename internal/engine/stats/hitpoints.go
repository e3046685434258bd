// Package stats computes hit points, armor class and initiative with their breakdowns
package stats

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// NoClassSelected is the hit point breakdown when no class is chosen
const NoClassSelected = "No class selected"

// HitPoints totals hit points across the class selections in order.
// Level 1 of the first class takes the hit die maximum; every other level takes
// the rounded-down average, or a roll when roller is not nil. Each level adds conMod.
func HitPoints(classes []dnd5e.ClassSelection, conMod int, cat *catalog.Catalog, roller dice.Roller) (int, []string) {
	if len(classes) == 0 {
		return 0, []string{NoClassSelected}
	}

	total := 0
	breakdown := make([]string, 0, len(classes))
	for i, cs := range classes {
		var class *catalog.Class
		if cat != nil {
			class, _ = cat.Class(cs.ClassID)
		}
		if class == nil {
			breakdown = append(breakdown, fmt.Sprintf("Unknown class %s: contributes 0", cs.ClassID))
			continue
		}
		if cs.Level < 1 {
			breakdown = append(breakdown, fmt.Sprintf("%s: no levels, contributes 0", class.Name))
			continue
		}

		subtotal, line := classHitPoints(class, cs.Level, i == 0, conMod, roller)
		total += subtotal
		breakdown = append(breakdown, line)
	}

	return total, breakdown
}

func classHitPoints(class *catalog.Class, level int, first bool, conMod int, roller dice.Roller) (int, string) {
	header := fmt.Sprintf("%s x%d (d%d)", class.Name, level, class.HitDie)
	perLevel := modifiers.AverageHitDie(class.HitDie) + conMod

	var parts []string
	subtotal := 0
	remaining := level

	if first {
		firstLevel := class.HitDie + conMod
		subtotal += firstLevel
		parts = append(parts, fmt.Sprintf("%d at 1st level (%d %s CON)", firstLevel, class.HitDie, modifiers.Format(conMod)))
		remaining--
	}

	if remaining > 0 {
		rolled := rollLevels(roller, remaining, class.HitDie)
		if rolled != nil {
			rolls := make([]string, len(rolled))
			for i, roll := range rolled {
				subtotal += roll + conMod
				rolls[i] = fmt.Sprintf("%d", roll)
			}
			parts = append(parts, fmt.Sprintf("rolled %s (%s CON each)", strings.Join(rolls, ", "), modifiers.Format(conMod)))
		} else {
			subtotal += remaining * perLevel
			parts = append(parts, fmt.Sprintf("%d x %d (avg %d %s CON)", remaining, perLevel, modifiers.AverageHitDie(class.HitDie), modifiers.Format(conMod)))
		}
	}

	return subtotal, fmt.Sprintf("%s: %s = %d", header, strings.Join(parts, " + "), subtotal)
}

// rollLevels returns nil when there is no roller or the roll fails, so the caller uses the average
func rollLevels(roller dice.Roller, count, die int) []int {
	if roller == nil {
		return nil
	}
	rolls, err := roller.RollN(count, die)
	if err != nil || len(rolls) != count {
		return nil
	}
	return rolls
}
