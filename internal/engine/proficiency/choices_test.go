package proficiency_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/proficiency"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

type ChoicesTestSuite struct {
	suite.Suite
	bundle *dnd5e.ProficiencyBundle
	slots  []dnd5e.ChoiceSlot
}

func TestChoicesSuite(t *testing.T) {
	suite.Run(t, new(ChoicesTestSuite))
}

func (s *ChoicesTestSuite) SetupTest() {
	s.bundle = &dnd5e.ProficiencyBundle{
		Fixed: []string{dnd5e.SkillDeception, dnd5e.SkillStealth},
	}
	s.slots = []dnd5e.ChoiceSlot{
		{
			Source:  "class:rogue",
			Choose:  2,
			Options: []string{dnd5e.SkillAcrobatics, dnd5e.SkillStealth, dnd5e.SkillInsight, dnd5e.SkillSleightOfHand},
		},
	}
}

func (s *ChoicesTestSuite) TestFixedOptionsRemovedFromSlots() {
	warnings := proficiency.ApplyChoices(s.bundle, s.slots, nil)

	s.Empty(warnings)
	s.Require().Len(s.bundle.AvailableChoices, 1)
	s.Equal([]string{dnd5e.SkillAcrobatics, dnd5e.SkillInsight, dnd5e.SkillSleightOfHand}, s.bundle.AvailableChoices[0].Options)
	s.Len(s.slots[0].Options, 4, "input slots are not modified")
}

func (s *ChoicesTestSuite) TestSelectedIsCanonicalizedAndCapped() {
	warnings := proficiency.ApplyChoices(s.bundle, s.slots, []string{"Acrobatics", "Skill: Insight", "Sleight of Hand"})

	s.Equal([]string{dnd5e.SkillAcrobatics, dnd5e.SkillInsight}, s.bundle.Selected)
	s.Equal([]string{"sleight-of-hand ignored, no open slot left"}, warnings)
}

func (s *ChoicesTestSuite) TestSelectedNeverDuplicatesFixed() {
	warnings := proficiency.ApplyChoices(s.bundle, s.slots, []string{"Stealth", "acrobatics", "Acrobatics", "Arcana"})

	s.Equal([]string{dnd5e.SkillAcrobatics}, s.bundle.Selected)
	s.Equal([]string{
		"stealth is already granted, choice ignored",
		"acrobatics chosen more than once",
		"arcana is not offered by any source",
	}, warnings)
	for _, key := range s.bundle.Selected {
		s.NotContains(s.bundle.Fixed, key)
	}
}

func (s *ChoicesTestSuite) TestSecondSlotTakesOverflow() {
	s.slots = append(s.slots, dnd5e.ChoiceSlot{
		Source:  "race:half-elf",
		Choose:  1,
		Options: []string{dnd5e.SkillSleightOfHand, dnd5e.SkillArcana},
	})

	warnings := proficiency.ApplyChoices(s.bundle, s.slots, []string{"acrobatics", "insight", "sleight of hand"})

	s.Empty(warnings)
	s.Equal([]string{dnd5e.SkillAcrobatics, dnd5e.SkillInsight, dnd5e.SkillSleightOfHand}, s.bundle.Selected)
}

func (s *ChoicesTestSuite) TestNilBundle() {
	s.Nil(proficiency.ApplyChoices(nil, s.slots, []string{"acrobatics"}))
}

func (s *ChoicesTestSuite) TestOverlappingSlotsRearrangeToFitLaterChoice() {
	slots := []dnd5e.ChoiceSlot{
		{Source: "class:wizard", Choose: 1, Options: []string{dnd5e.SkillArcana, dnd5e.SkillHistory}},
		{Source: "race:half-elf", Choose: 1, Options: []string{dnd5e.SkillArcana}},
	}

	warnings := proficiency.ApplyChoices(s.bundle, slots, []string{"Arcana", "History"})

	s.Empty(warnings)
	s.Equal([]string{dnd5e.SkillArcana, dnd5e.SkillHistory}, s.bundle.Selected)
}

func (s *ChoicesTestSuite) TestEarlierChoicesKeepTheirPlace() {
	slots := []dnd5e.ChoiceSlot{
		{Source: "class:wizard", Choose: 1, Options: []string{dnd5e.SkillArcana, dnd5e.SkillHistory}},
	}

	warnings := proficiency.ApplyChoices(s.bundle, slots, []string{"history", "arcana"})

	s.Equal([]string{dnd5e.SkillHistory}, s.bundle.Selected)
	s.Equal([]string{"arcana ignored, no open slot left"}, warnings)
}
