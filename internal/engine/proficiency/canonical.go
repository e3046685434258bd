// Package proficiency aggregates tool and skill proficiencies from race, background and classes
package proficiency

import "strings"

// synonyms maps known raw spellings (lowercased, straight apostrophes) to canonical keys
var synonyms = map[string]string{
	"thieves' tools":         "thieves-tools",
	"thieves tools":          "thieves-tools",
	"thief's tools":          "thieves-tools",
	"thieves-tools":          "thieves-tools",
	"tools: thieves tools":   "thieves-tools",
	"vehicles (land)":        "land-vehicles",
	"land vehicles":          "land-vehicles",
	"vehicles (water)":       "water-vehicles",
	"water vehicles":         "water-vehicles",
	"dice":                   "dice-set",
	"playing cards":          "playing-card-set",
	"three-dragon ante":      "three-dragon-ante-set",
	"herbalism":              "herbalism-kit",
	"navigator's kit":        "navigators-tools",
	"poisoners kit":          "poisoners-kit",
	"skill: acrobatics":      "acrobatics",
	"skill: animal handling": "animal-handling",
	"skill: arcana":          "arcana",
	"skill: athletics":       "athletics",
	"skill: deception":       "deception",
	"skill: history":         "history",
	"skill: insight":         "insight",
	"skill: intimidation":    "intimidation",
	"skill: investigation":   "investigation",
	"skill: medicine":        "medicine",
	"skill: nature":          "nature",
	"skill: perception":      "perception",
	"skill: performance":     "performance",
	"skill: persuasion":      "persuasion",
	"skill: religion":        "religion",
	"skill: sleight of hand": "sleight-of-hand",
	"skill: stealth":         "stealth",
	"skill: survival":        "survival",
}

var lookupReplacer = strings.NewReplacer("’", "'", "‘", "'")

// Canonicalize maps a raw proficiency name to its canonical key.
// Known spellings come from the synonym table; anything else goes through Normalize.
func Canonicalize(raw string) string {
	lookup := strings.ToLower(strings.TrimSpace(lookupReplacer.Replace(raw)))
	lookup = strings.Join(strings.Fields(lookup), " ")
	if key, ok := synonyms[lookup]; ok {
		return key
	}
	return Normalize(raw)
}

var fallbackReplacer = strings.NewReplacer(
	"'", "",
	"’", "",
	"‘", "",
	"(", "",
	")", "",
	" ", "-",
	"_", "-",
)

// Normalize is the fallback rule: lowercase, spaces to hyphens, parentheses and
// apostrophes stripped, repeated hyphens collapsed, leading/trailing hyphens trimmed.
func Normalize(raw string) string {
	key := fallbackReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// CanonicalizeAll canonicalizes every name, dropping empty results
func CanonicalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if key := Canonicalize(name); key != "" {
			out = append(out, key)
		}
	}
	return out
}
