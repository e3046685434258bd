package proficiency

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ResolveInput is the part of a selection the resolver reads
type ResolveInput struct {
	Classes      []dnd5e.ClassSelection
	RaceID       string
	SubraceID    string
	BackgroundID string
}

// ResolveOutput holds one bundle per proficiency kind
type ResolveOutput struct {
	Tools  *dnd5e.ProficiencyBundle
	Skills *dnd5e.ProficiencyBundle
}

// ChoiceSlotsOutput holds the open slots per proficiency kind
type ChoiceSlotsOutput struct {
	Tools  []dnd5e.ChoiceSlot
	Skills []dnd5e.ChoiceSlot
}

// Resolver merges the fixed contributions of the race, background and class sources
type Resolver struct {
	race       Source
	background Source
	class      Source
}

// NewResolver creates a resolver over the catalog's three sources
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{
		race:       NewRaceSource(cat),
		background: NewBackgroundSource(cat),
		class:      NewClassSource(cat),
	}
}

// Resolve returns the de-duplicated fixed proficiencies in race, background, class order.
// The first occurrence of a key wins; later duplicates are dropped.
func (r *Resolver) Resolve(input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("resolve input is required")
	}

	selection := input.selection()
	return &ResolveOutput{
		Tools:  r.bundle(selection, catalog.KindTools),
		Skills: r.bundle(selection, catalog.KindSkills),
	}, nil
}

// ChoiceSlots returns the slots offered by every source, in race, background, class order
func (r *Resolver) ChoiceSlots(input *ResolveInput) (*ChoiceSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("resolve input is required")
	}

	selection := input.selection()
	out := &ChoiceSlotsOutput{}
	for _, source := range r.sources() {
		out.Tools = append(out.Tools, source.ChoiceSlots(selection, catalog.KindTools)...)
		out.Skills = append(out.Skills, source.ChoiceSlots(selection, catalog.KindSkills)...)
	}
	return out, nil
}

func (r *Resolver) bundle(selection *dnd5e.Selection, kind catalog.Kind) *dnd5e.ProficiencyBundle {
	fromRace := r.race.Contributions(selection, kind)
	fromBackground := r.background.Contributions(selection, kind)
	fromClasses := r.class.Contributions(selection, kind)

	all := make([]string, 0, len(fromRace)+len(fromBackground)+len(fromClasses))
	all = append(all, fromRace...)
	all = append(all, fromBackground...)
	all = append(all, fromClasses...)

	return &dnd5e.ProficiencyBundle{
		Fixed:          unique(all),
		FromRace:       fromRace,
		FromBackground: fromBackground,
		FromClasses:    fromClasses,
	}
}

func (r *Resolver) sources() []Source {
	return []Source{r.race, r.background, r.class}
}

func (in *ResolveInput) selection() *dnd5e.Selection {
	return &dnd5e.Selection{
		Classes:      in.Classes,
		RaceID:       in.RaceID,
		SubraceID:    in.SubraceID,
		BackgroundID: in.BackgroundID,
	}
}
