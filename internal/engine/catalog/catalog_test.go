package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = cat
}

func (s *CatalogTestSuite) TestDefaultIsShared() {
	again, err := catalog.Default()
	s.Require().NoError(err)
	s.Same(s.catalog, again)
}

func (s *CatalogTestSuite) TestLookupAcceptsBothIdForms() {
	for _, id := range []string{dnd5e.ClassFighter, "fighter", "Fighter"} {
		class, ok := s.catalog.Class(id)
		s.Require().True(ok, id)
		s.Equal(10, class.HitDie)
	}

	feat, ok := s.catalog.Feat(dnd5e.FeatAlert)
	s.Require().True(ok)
	s.Equal(5, feat.InitiativeBonus)

	bg, ok := s.catalog.Background(dnd5e.BackgroundFolkHero)
	s.Require().True(ok)
	s.Equal("Folk Hero", bg.Name)
}

func (s *CatalogTestSuite) TestHitDice() {
	expected := map[string]int{
		dnd5e.ClassBarbarian: 12,
		dnd5e.ClassFighter:   10,
		dnd5e.ClassRogue:     8,
		dnd5e.ClassWizard:    6,
	}
	for id, die := range expected {
		class, ok := s.catalog.Class(id)
		s.Require().True(ok, id)
		s.Equal(die, class.HitDie, id)
	}
}

func (s *CatalogTestSuite) TestSubraceMembership() {
	s.True(s.catalog.SubraceBelongs(dnd5e.RaceDwarf, dnd5e.SubraceHillDwarf))
	s.False(s.catalog.SubraceBelongs(dnd5e.RaceElf, dnd5e.SubraceHillDwarf))
	s.False(s.catalog.SubraceBelongs(dnd5e.RaceHuman, ""))
	s.False(s.catalog.SubraceBelongs("RACE_UNKNOWN", dnd5e.SubraceHillDwarf))

	sub, ok := s.catalog.Subrace(dnd5e.RaceGnome, dnd5e.SubraceRockGnome)
	s.Require().True(ok)
	s.Equal(1, sub.AbilityBonuses[dnd5e.AbilityConstitution])
}

func (s *CatalogTestSuite) TestGrantsByKind() {
	class, ok := s.catalog.Class(dnd5e.ClassRogue)
	s.Require().True(ok)

	s.Equal([]string{"thieves' tools"}, class.List(catalog.KindTools))
	s.Empty(class.List(catalog.KindSkills))
	s.Require().Len(class.Choices(catalog.KindSkills), 1)
	s.Equal(4, class.Choices(catalog.KindSkills)[0].Choose)

	var nilGrants *catalog.Grants
	s.Nil(nilGrants.List(catalog.KindTools))
	s.Nil(nilGrants.Choices(catalog.KindTools))
}

func (s *CatalogTestSuite) TestParseRejectsBadHitDie() {
	_, err := catalog.Parse([]byte(`
races:
  human:
    name: Human
classes:
  commoner:
    name: Commoner
    hit_die: 4
`))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "classes.commoner.hit_die")
}

func (s *CatalogTestSuite) TestParseRejectsEmptyChoice() {
	_, err := catalog.Parse([]byte(`
races:
  human:
    name: Human
    skill_choices:
      - choose: 0
classes:
  fighter:
    name: Fighter
    hit_die: 10
`))
	s.Require().Error(err)
	s.Contains(err.Error(), "races.human")
}

func (s *CatalogTestSuite) TestParseRejectsMalformedYAML() {
	_, err := catalog.Parse([]byte("races: [unterminated"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestParseRequiresRacesAndClasses() {
	_, err := catalog.Parse([]byte("feats: {}"))
	s.Require().Error(err)
	s.Contains(err.Error(), "races: is required")
	s.Contains(err.Error(), "classes: is required")
}
