// Package catalog loads the reference data (races, backgrounds, classes, feats) the sheet engine reads
package catalog

import (
	_ "embed"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ChoiceSpec is a "choose N from options" grant
type ChoiceSpec struct {
	Choose  int      `yaml:"choose"`
	Options []string `yaml:"options"`
}

// Grants are the proficiencies a source hands out, as raw names
type Grants struct {
	Tools        []string     `yaml:"tools"`
	Skills       []string     `yaml:"skills"`
	ToolChoices  []ChoiceSpec `yaml:"tool_choices"`
	SkillChoices []ChoiceSpec `yaml:"skill_choices"`
}

// Race is a playable race
type Race struct {
	Name           string              `yaml:"name"`
	AbilityBonuses map[string]int      `yaml:"ability_bonuses"`
	Subraces       map[string]*Subrace `yaml:"subraces"`
	Grants         `yaml:",inline"`
}

// Subrace belongs to exactly one race
type Subrace struct {
	Name           string         `yaml:"name"`
	AbilityBonuses map[string]int `yaml:"ability_bonuses"`
	Grants         `yaml:",inline"`
}

// Background is a character background
type Background struct {
	Name   string `yaml:"name"`
	Grants `yaml:",inline"`
}

// Class is a character class
type Class struct {
	Name   string `yaml:"name"`
	HitDie int    `yaml:"hit_die"`
	Grants `yaml:",inline"`
}

// Feat is a feat; only the initiative bonus matters to the sheet
type Feat struct {
	Name            string `yaml:"name"`
	InitiativeBonus int    `yaml:"initiative_bonus"`
}

// Catalog is the parsed reference data. It is read-only after Parse.
type Catalog struct {
	Races       map[string]*Race       `yaml:"races"`
	Backgrounds map[string]*Background `yaml:"backgrounds"`
	Classes     map[string]*Class      `yaml:"classes"`
	Feats       map[string]*Feat       `yaml:"feats"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embeddedCatalog)
})

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return loadDefault()
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Validate checks the catalog is usable by the calculators
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Races) == 0 {
		vb.RequiredField("races")
	}
	if len(c.Classes) == 0 {
		vb.RequiredField("classes")
	}

	for _, id := range sortedKeys(c.Classes) {
		class := c.Classes[id]
		if class == nil {
			vb.RequiredField("classes." + id)
			continue
		}
		switch class.HitDie {
		case 6, 8, 10, 12:
		default:
			vb.Fieldf("classes."+id+".hit_die", "must be one of 6, 8, 10, 12, got %d", class.HitDie)
		}
		validateGrants(vb, "classes."+id, &class.Grants)
	}

	for _, id := range sortedKeys(c.Races) {
		race := c.Races[id]
		if race == nil {
			vb.RequiredField("races." + id)
			continue
		}
		validateGrants(vb, "races."+id, &race.Grants)
		for subID, sub := range race.Subraces {
			if sub == nil {
				vb.RequiredField("races." + id + ".subraces." + subID)
				continue
			}
			validateGrants(vb, "races."+id+".subraces."+subID, &sub.Grants)
		}
	}

	for _, id := range sortedKeys(c.Backgrounds) {
		if bg := c.Backgrounds[id]; bg != nil {
			validateGrants(vb, "backgrounds."+id, &bg.Grants)
		}
	}

	return vb.Build()
}

func validateGrants(vb *errors.ValidationBuilder, path string, g *Grants) {
	for i, spec := range append(append([]ChoiceSpec{}, g.ToolChoices...), g.SkillChoices...) {
		if spec.Choose < 1 {
			vb.Fieldf(path, "choice %d must choose at least 1", i)
		}
		if len(spec.Options) == 0 {
			vb.Fieldf(path, "choice %d has no options", i)
		}
	}
}

// Race looks up a race by id ("RACE_DWARF" or "dwarf")
func (c *Catalog) Race(id string) (*Race, bool) {
	race, ok := c.Races[dnd5e.NormalizeID(id)]
	return race, ok && race != nil
}

// Subrace returns the subrace only when it belongs to the given race
func (c *Catalog) Subrace(raceID, subraceID string) (*Subrace, bool) {
	race, ok := c.Race(raceID)
	if !ok || subraceID == "" {
		return nil, false
	}
	sub, ok := race.Subraces[dnd5e.NormalizeID(subraceID)]
	return sub, ok && sub != nil
}

// SubraceBelongs reports whether subraceID is a subrace of raceID
func (c *Catalog) SubraceBelongs(raceID, subraceID string) bool {
	_, ok := c.Subrace(raceID, subraceID)
	return ok
}

// Background looks up a background by id
func (c *Catalog) Background(id string) (*Background, bool) {
	bg, ok := c.Backgrounds[dnd5e.NormalizeID(id)]
	return bg, ok && bg != nil
}

// Class looks up a class by id
func (c *Catalog) Class(id string) (*Class, bool) {
	class, ok := c.Classes[dnd5e.NormalizeID(id)]
	return class, ok && class != nil
}

// Feat looks up a feat by id ("FEAT_ALERT" or "alert")
func (c *Catalog) Feat(id string) (*Feat, bool) {
	feat, ok := c.Feats[dnd5e.NormalizeID(id)]
	return feat, ok && feat != nil
}

// List returns the fixed raw names of the grant for the kind
func (g *Grants) List(kind Kind) []string {
	if g == nil {
		return nil
	}
	if kind == KindTools {
		return g.Tools
	}
	return g.Skills
}

// Choices returns the choice specs of the grant for the kind
func (g *Grants) Choices(kind Kind) []ChoiceSpec {
	if g == nil {
		return nil
	}
	if kind == KindTools {
		return g.ToolChoices
	}
	return g.SkillChoices
}

// Kind is a proficiency family
type Kind string

// Proficiency kinds
const (
	KindTools  Kind = "tools"
	KindSkills Kind = "skills"
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
