package dnd5e

import "strings"

var idPrefixes = []string{
	"subrace_",
	"race_",
	"class_",
	"background_",
	"feat_",
	"equipment_",
	"armor_",
}

// NormalizeID converts an identifier into its lowercase hyphenated lookup key.
// "SUBRACE_HILL_DWARF" and "hill-dwarf" both become "hill-dwarf".
func NormalizeID(id string) string {
	key := lower(id)
	for _, prefix := range idPrefixes {
		if strings.HasPrefix(key, prefix) {
			key = key[len(prefix):]
			break
		}
	}

	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	return strings.Trim(key, "-")
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
