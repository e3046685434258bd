package proficiency_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/proficiency"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ResolverTestSuite struct {
	suite.Suite
	catalog  *catalog.Catalog
	resolver *proficiency.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = cat
	s.resolver = proficiency.NewResolver(cat)
}

func (s *ResolverTestSuite) TestThievesToolsFromTwoSourcesAppearsOnce() {
	out, err := s.resolver.Resolve(&proficiency.ResolveInput{
		Classes:      []dnd5e.ClassSelection{{ClassID: dnd5e.ClassRogue, Level: 1}},
		RaceID:       dnd5e.RaceHuman,
		BackgroundID: dnd5e.BackgroundCriminal,
	})
	s.Require().NoError(err)

	s.Equal([]string{"thieves-tools"}, out.Tools.Fixed)
	s.Empty(out.Tools.FromRace)
	s.Equal([]string{"thieves-tools"}, out.Tools.FromBackground)
	s.Equal([]string{"thieves-tools"}, out.Tools.FromClasses)
	s.Equal([]string{dnd5e.SkillDeception, dnd5e.SkillStealth}, out.Skills.Fixed)
}

func (s *ResolverTestSuite) TestOrderIsRaceBackgroundClass() {
	out, err := s.resolver.Resolve(&proficiency.ResolveInput{
		Classes: []dnd5e.ClassSelection{
			{ClassID: dnd5e.ClassDruid, Level: 2},
			{ClassID: dnd5e.ClassRogue, Level: 1},
		},
		RaceID:       dnd5e.RaceGnome,
		SubraceID:    dnd5e.SubraceRockGnome,
		BackgroundID: dnd5e.BackgroundUrchin,
	})
	s.Require().NoError(err)

	s.Equal([]string{"tinkers-tools", "disguise-kit", "thieves-tools", "herbalism-kit"}, out.Tools.Fixed)
	s.Equal([]string{"tinkers-tools"}, out.Tools.FromRace)
	s.Equal([]string{"disguise-kit", "thieves-tools"}, out.Tools.FromBackground)
	s.Equal([]string{"herbalism-kit", "thieves-tools"}, out.Tools.FromClasses)
}

func (s *ResolverTestSuite) TestInvalidSubraceSkipsSubraceGrants() {
	out, err := s.resolver.Resolve(&proficiency.ResolveInput{
		RaceID:    dnd5e.RaceElf,
		SubraceID: dnd5e.SubraceRockGnome,
	})
	s.Require().NoError(err)

	s.Empty(out.Tools.Fixed)
	s.Equal([]string{dnd5e.SkillPerception}, out.Skills.Fixed, "base race grants still apply")
}

func (s *ResolverTestSuite) TestUnknownIdsContributeNothing() {
	out, err := s.resolver.Resolve(&proficiency.ResolveInput{
		Classes:      []dnd5e.ClassSelection{{ClassID: "CLASS_ARTIFICER", Level: 1}},
		RaceID:       "RACE_WARFORGED",
		SubraceID:    "SUBRACE_ENVOY",
		BackgroundID: "BACKGROUND_HAUNTED_ONE",
	})
	s.Require().NoError(err)

	s.Empty(out.Tools.Fixed)
	s.Empty(out.Skills.Fixed)
}

func (s *ResolverTestSuite) TestEmptyInput() {
	out, err := s.resolver.Resolve(&proficiency.ResolveInput{})
	s.Require().NoError(err)
	s.Empty(out.Tools.Fixed)
	s.Empty(out.Skills.Fixed)
}

func (s *ResolverTestSuite) TestNilInputIsContractViolation() {
	_, err := s.resolver.Resolve(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.ChoiceSlots(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestIdempotent() {
	input := &proficiency.ResolveInput{
		Classes:      []dnd5e.ClassSelection{{ClassID: dnd5e.ClassRogue, Level: 3}, {ClassID: dnd5e.ClassDruid, Level: 1}},
		RaceID:       dnd5e.RaceHalfOrc,
		BackgroundID: dnd5e.BackgroundSoldier,
	}

	first, err := s.resolver.Resolve(input)
	s.Require().NoError(err)
	second, err := s.resolver.Resolve(input)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal([]string{dnd5e.SkillIntimidation, dnd5e.SkillAthletics}, first.Skills.Fixed)
}

func (s *ResolverTestSuite) TestChoiceSlots() {
	out, err := s.resolver.ChoiceSlots(&proficiency.ResolveInput{
		Classes: []dnd5e.ClassSelection{
			{ClassID: dnd5e.ClassRogue, Level: 1},
			{ClassID: dnd5e.ClassFighter, Level: 1},
		},
		RaceID:       dnd5e.RaceDwarf,
		SubraceID:    dnd5e.SubraceHillDwarf,
		BackgroundID: dnd5e.BackgroundCriminal,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Tools, 2)
	s.Equal("race:dwarf", out.Tools[0].Source)
	s.Equal([]string{"smiths-tools", "brewers-supplies", "masons-tools"}, out.Tools[0].Options)
	s.Equal("background:criminal", out.Tools[1].Source)
	s.Contains(out.Tools[1].Options, "dice-set")

	s.Require().Len(out.Skills, 1, "only the first class offers skill choices")
	s.Equal("class:rogue", out.Skills[0].Source)
	s.Equal(4, out.Skills[0].Choose)
}

func (s *ResolverTestSuite) TestSourceNames() {
	s.Equal("race", proficiency.NewRaceSource(s.catalog).Name())
	s.Equal("background", proficiency.NewBackgroundSource(s.catalog).Name())
	s.Equal("class", proficiency.NewClassSource(s.catalog).Name())
}

func (s *ResolverTestSuite) TestSourcesTolerateNil() {
	var sources = []proficiency.Source{
		proficiency.NewRaceSource(nil),
		proficiency.NewBackgroundSource(s.catalog),
		proficiency.NewClassSource(s.catalog),
	}

	for _, source := range sources {
		s.Empty(source.Contributions(nil, catalog.KindTools))
		s.Empty(source.ChoiceSlots(nil, catalog.KindSkills))
	}
	s.Empty(sources[0].Contributions(&dnd5e.Selection{RaceID: dnd5e.RaceElf}, catalog.KindSkills))
}
