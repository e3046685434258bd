package proficiency

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Source is one contributor of proficiencies. Lookups never fail:
// absent or unknown ids contribute nothing.
type Source interface {
	// Name identifies the source in diagnostics
	Name() string
	// Contributions returns the canonical keys the source grants unconditionally
	Contributions(selection *dnd5e.Selection, kind catalog.Kind) []string
	// ChoiceSlots returns the open "choose N" slots the source offers
	ChoiceSlots(selection *dnd5e.Selection, kind catalog.Kind) []dnd5e.ChoiceSlot
}

// RaceSource grants base race proficiencies, plus subrace ones when the subrace belongs to the race
type RaceSource struct {
	catalog *catalog.Catalog
}

// NewRaceSource creates a race source
func NewRaceSource(cat *catalog.Catalog) *RaceSource {
	return &RaceSource{catalog: cat}
}

// Name implements Source
func (s *RaceSource) Name() string { return "race" }

// Contributions implements Source
func (s *RaceSource) Contributions(selection *dnd5e.Selection, kind catalog.Kind) []string {
	if selection == nil || s.catalog == nil {
		return nil
	}

	race, ok := s.catalog.Race(selection.RaceID)
	if !ok {
		return nil
	}

	keys := CanonicalizeAll(race.List(kind))
	// An invalid pairing silently skips the subrace grants
	if sub, ok := s.catalog.Subrace(selection.RaceID, selection.SubraceID); ok {
		keys = append(keys, CanonicalizeAll(sub.List(kind))...)
	}

	return unique(keys)
}

// ChoiceSlots implements Source
func (s *RaceSource) ChoiceSlots(selection *dnd5e.Selection, kind catalog.Kind) []dnd5e.ChoiceSlot {
	if selection == nil || s.catalog == nil {
		return nil
	}

	race, ok := s.catalog.Race(selection.RaceID)
	if !ok {
		return nil
	}

	slots := toSlots("race:"+dnd5e.NormalizeID(selection.RaceID), race.Choices(kind))
	if sub, ok := s.catalog.Subrace(selection.RaceID, selection.SubraceID); ok {
		slots = append(slots, toSlots("subrace:"+dnd5e.NormalizeID(selection.SubraceID), sub.Choices(kind))...)
	}

	return slots
}

// BackgroundSource grants background proficiencies
type BackgroundSource struct {
	catalog *catalog.Catalog
}

// NewBackgroundSource creates a background source
func NewBackgroundSource(cat *catalog.Catalog) *BackgroundSource {
	return &BackgroundSource{catalog: cat}
}

// Name implements Source
func (s *BackgroundSource) Name() string { return "background" }

// Contributions implements Source
func (s *BackgroundSource) Contributions(selection *dnd5e.Selection, kind catalog.Kind) []string {
	if selection == nil || s.catalog == nil {
		return nil
	}

	bg, ok := s.catalog.Background(selection.BackgroundID)
	if !ok {
		return nil
	}

	return unique(CanonicalizeAll(bg.List(kind)))
}

// ChoiceSlots implements Source
func (s *BackgroundSource) ChoiceSlots(selection *dnd5e.Selection, kind catalog.Kind) []dnd5e.ChoiceSlot {
	if selection == nil || s.catalog == nil {
		return nil
	}

	bg, ok := s.catalog.Background(selection.BackgroundID)
	if !ok {
		return nil
	}

	return toSlots("background:"+dnd5e.NormalizeID(selection.BackgroundID), bg.Choices(kind))
}

// ClassSource grants proficiencies of every selected class, regardless of level
type ClassSource struct {
	catalog *catalog.Catalog
}

// NewClassSource creates a class source
func NewClassSource(cat *catalog.Catalog) *ClassSource {
	return &ClassSource{catalog: cat}
}

// Name implements Source
func (s *ClassSource) Name() string { return "class" }

// Contributions implements Source
func (s *ClassSource) Contributions(selection *dnd5e.Selection, kind catalog.Kind) []string {
	if selection == nil || s.catalog == nil {
		return nil
	}

	var keys []string
	for _, cs := range selection.Classes {
		class, ok := s.catalog.Class(cs.ClassID)
		if !ok {
			continue
		}
		keys = append(keys, CanonicalizeAll(class.List(kind))...)
	}

	return unique(keys)
}

// ChoiceSlots implements Source. Only the first class offers skill choices;
// a multiclass does not grant the full skill list again.
func (s *ClassSource) ChoiceSlots(selection *dnd5e.Selection, kind catalog.Kind) []dnd5e.ChoiceSlot {
	if selection == nil || s.catalog == nil {
		return nil
	}

	var slots []dnd5e.ChoiceSlot
	for i, cs := range selection.Classes {
		if i > 0 && kind == catalog.KindSkills {
			break
		}
		class, ok := s.catalog.Class(cs.ClassID)
		if !ok {
			continue
		}
		slots = append(slots, toSlots("class:"+dnd5e.NormalizeID(cs.ClassID), class.Choices(kind))...)
	}

	return slots
}

func toSlots(source string, specs []catalog.ChoiceSpec) []dnd5e.ChoiceSlot {
	slots := make([]dnd5e.ChoiceSlot, 0, len(specs))
	for _, spec := range specs {
		slots = append(slots, dnd5e.ChoiceSlot{
			Source:  source,
			Choose:  spec.Choose,
			Options: unique(CanonicalizeAll(spec.Options)),
		})
	}
	return slots
}

// unique drops later duplicates, keeping first-seen order
func unique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
