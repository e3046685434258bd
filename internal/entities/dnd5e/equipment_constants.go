package dnd5e

// Armor category constants
const (
	// ArmorCategoryLight adds the full dexterity modifier
	ArmorCategoryLight ArmorCategory = "light"
	// ArmorCategoryMedium adds the dexterity modifier up to a cap
	ArmorCategoryMedium ArmorCategory = "medium"
	// ArmorCategoryHeavy ignores dexterity
	ArmorCategoryHeavy ArmorCategory = "heavy"
	// ArmorCategoryShield is carried, not worn
	ArmorCategoryShield ArmorCategory = "shield"
)

// Armor class constants
const (
	// UnarmoredBaseAC is the base armor class without armor
	UnarmoredBaseAC = 10
	// ShieldBonus is the flat bonus for carrying a shield
	ShieldBonus = 2
	// MediumArmorDexCap is the default dexterity cap for medium armor
	MediumArmorDexCap = 2
)

// ParseArmorCategory maps an external category name onto an ArmorCategory
func ParseArmorCategory(raw string) (ArmorCategory, bool) {
	switch ArmorCategory(lower(raw)) {
	case ArmorCategoryLight:
		return ArmorCategoryLight, true
	case ArmorCategoryMedium:
		return ArmorCategoryMedium, true
	case ArmorCategoryHeavy:
		return ArmorCategoryHeavy, true
	case ArmorCategoryShield:
		return ArmorCategoryShield, true
	default:
		return "", false
	}
}
