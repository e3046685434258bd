package stats

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// ArmorClass computes armor class from the dexterity modifier, the equipped armor and
// its fetched detail. Armor whose detail is pending, unavailable or missing counts as
// no armor, and the breakdown says so.
func ArmorClass(dexMod int, equipment dnd5e.EquipmentState, detail *dnd5e.ArmorDetail, status dnd5e.ArmorDetailStatus) (int, []string) {
	shield := equipment.Shield
	var breakdown []string
	var base, dexApplied int
	var dexLine string

	armorID := equipment.NormalizedArmorID()
	usable := equipment.HasArmor() && status == dnd5e.ArmorDetailReady && detail != nil &&
		dnd5e.NormalizeID(detail.ArmorID) == dnd5e.NormalizeID(armorID)

	switch {
	case !equipment.HasArmor():
		base = dnd5e.UnarmoredBaseAC
		breakdown = append(breakdown, fmt.Sprintf("Base %d (no armor)", base))
		dexApplied, dexLine = dexMod, fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))

	case !usable:
		base = dnd5e.UnarmoredBaseAC
		breakdown = append(breakdown, fmt.Sprintf("Base %d (armor detail for %s %s)", base, armorID, missingReason(status)))
		dexApplied, dexLine = dexMod, fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))

	case detail.Category == dnd5e.ArmorCategoryShield:
		base = dnd5e.UnarmoredBaseAC
		breakdown = append(breakdown, fmt.Sprintf("Base %d (%s is a shield, not body armor)", base, detail.Name))
		dexApplied, dexLine = dexMod, fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))
		shield = true

	default:
		base = detail.BaseAC
		breakdown = append(breakdown, fmt.Sprintf("Base %d (%s, %s)", base, detail.Name, detail.Category))
		dexApplied, dexLine = armorDex(dexMod, detail)
	}

	breakdown = append(breakdown, dexLine)
	total := base + dexApplied

	if shield {
		total += dnd5e.ShieldBonus
		breakdown = append(breakdown, fmt.Sprintf("Shield %s", modifiers.Format(dnd5e.ShieldBonus)))
	}

	return total, breakdown
}

func armorDex(dexMod int, detail *dnd5e.ArmorDetail) (int, string) {
	switch detail.Category {
	case dnd5e.ArmorCategoryHeavy:
		return 0, fmt.Sprintf("Dexterity %s (not applied, heavy armor)", modifiers.Format(dexMod))
	case dnd5e.ArmorCategoryMedium:
		limit := dnd5e.MediumArmorDexCap
		if detail.DexCap != nil {
			limit = *detail.DexCap
		}
		if dexMod > limit {
			return limit, fmt.Sprintf("Dexterity %s (capped at %s)", modifiers.Format(dexMod), modifiers.Format(limit))
		}
		return dexMod, fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))
	default:
		return dexMod, fmt.Sprintf("Dexterity %s", modifiers.Format(dexMod))
	}
}

func missingReason(status dnd5e.ArmorDetailStatus) string {
	switch status {
	case dnd5e.ArmorDetailPending:
		return "pending, counted as no armor"
	case dnd5e.ArmorDetailUnavailable:
		return "unavailable, counted as no armor"
	default:
		return "missing, counted as no armor"
	}
}
