package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// renderMarkdown formats a computed sheet as a markdown document
func renderMarkdown(result *sheetsvc.Result) string {
	var b strings.Builder

	b.WriteString("# Character Sheet\n\n")

	if stats := result.Stats; stats != nil {
		b.WriteString("## Combat\n\n")
		b.WriteString("| Stat | Value | Breakdown |\n|---|---|---|\n")
		fmt.Fprintf(&b, "| Hit Points | %d | %s |\n", stats.HitPoints, strings.Join(stats.HitPointsBreakdown, "; "))
		fmt.Fprintf(&b, "| Armor Class | %d | %s |\n", stats.ArmorClass, strings.Join(stats.ArmorClassBreakdown, "; "))
		fmt.Fprintf(&b, "| Initiative | %+d | %s |\n", stats.Initiative, strings.Join(stats.InitiativeBreakdown, "; "))
		b.WriteString("\n")

		b.WriteString("## Abilities\n\n")
		b.WriteString("| Ability | Score | Modifier |\n|---|---|---|\n")
		for _, ability := range dnd5e.AllAbilities {
			fmt.Fprintf(&b, "| %s | %d | %+d |\n",
				ability, stats.AbilityScores.Get(ability), stats.AbilityModifiers[ability])
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Armor detail: **%s**\n\n", result.ArmorStatus)

	writeBundle(&b, "Skills", result.Skills)
	writeBundle(&b, "Tools", result.Tools)

	if len(result.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeBundle(b *strings.Builder, title string, bundle *dnd5e.ProficiencyBundle) {
	if bundle == nil {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	all := bundle.All()
	if len(all) == 0 {
		b.WriteString("_none_\n\n")
	} else {
		sorted := slices.Clone(all)
		slices.Sort(sorted)
		for _, key := range sorted {
			fmt.Fprintf(b, "- %s\n", key)
		}
		b.WriteString("\n")
	}

	for _, slot := range bundle.AvailableChoices {
		fmt.Fprintf(b, "Choose %d from %s: %s\n\n", slot.Choose, slot.Source, strings.Join(slot.Options, ", "))
	}
}
