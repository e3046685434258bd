// Package modifiers holds the ability score arithmetic shared by every calculator
package modifiers

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Modifier converts an ability score into its modifier: floor((score - 10) / 2).
// Go integer division truncates toward zero, so odd scores below 10 are adjusted down.
func Modifier(score int) int {
	diff := score - 10
	modifier := diff / 2
	if diff < 0 && diff%2 != 0 {
		modifier--
	}
	return modifier
}

// TotalAbilityScore adds every bonus to the base score. No clamping is applied.
func TotalAbilityScore(base int, bonuses ...int) int {
	total := base
	for _, bonus := range bonuses {
		total += bonus
	}
	return total
}

// AverageHitDie is the rounded-down average roll used for levels after the first (d8 -> 5)
func AverageHitDie(die int) int {
	if die <= 0 {
		return 0
	}
	return die/2 + 1
}

// Format renders a modifier with an explicit sign
func Format(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}

// AbilityModifiers returns the modifier for every ability. Nil scores yield all zeros.
func AbilityModifiers(scores *dnd5e.AbilityScores) map[string]int {
	out := make(map[string]int, len(dnd5e.AllAbilities))
	for _, ability := range dnd5e.AllAbilities {
		if scores == nil {
			out[ability] = 0
			continue
		}
		out[ability] = Modifier(scores.Get(ability))
	}
	return out
}
