package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

func sampleResult() *sheetsvc.Result {
	return &sheetsvc.Result{
		Stats: &dnd5e.DerivedStats{
			HitPoints:           13,
			ArmorClass:          18,
			Initiative:          1,
			HitPointsBreakdown:  []string{"fighter 1: 10 + 2"},
			ArmorClassBreakdown: []string{"chain mail 16", "shield +2"},
			InitiativeBreakdown: []string{"dexterity +1"},
			AbilityScores: dnd5e.AbilityScores{
				Strength: 15, Dexterity: 12, Constitution: 16,
				Intelligence: 10, Wisdom: 14, Charisma: 8,
			},
			AbilityModifiers: map[string]int{
				"strength": 2, "dexterity": 1, "constitution": 3,
				"intelligence": 0, "wisdom": 2, "charisma": -1,
			},
			ArmorStatus: dnd5e.ArmorDetailReady,
		},
		Skills: &dnd5e.ProficiencyBundle{
			Fixed: []string{"intimidation", "athletics"},
			AvailableChoices: []dnd5e.ChoiceSlot{
				{Source: "class:fighter", Choose: 2, Options: []string{"acrobatics", "history"}},
			},
		},
		Tools:       &dnd5e.ProficiencyBundle{},
		Warnings:    []string{"unknown feat \"lucky-charm\" ignored"},
		ArmorStatus: dnd5e.ArmorDetailReady,
	}
}

func TestRenderMarkdown(t *testing.T) {
	md := renderMarkdown(sampleResult())

	assert.Contains(t, md, "| Hit Points | 13 | fighter 1: 10 + 2 |")
	assert.Contains(t, md, "| Armor Class | 18 | chain mail 16; shield +2 |")
	assert.Contains(t, md, "| Initiative | +1 |")
	assert.Contains(t, md, "| charisma | 8 | -1 |")
	assert.Contains(t, md, "Armor detail: **ready**")
	assert.Contains(t, md, "Choose 2 from class:fighter: acrobatics, history")
	assert.Contains(t, md, "## Tools\n\n_none_")
	assert.Contains(t, md, "## Warnings")

	// skills are listed alphabetically
	assert.Less(t, bytes.Index([]byte(md), []byte("- athletics")), bytes.Index([]byte(md), []byte("- intimidation")))
}

func TestRenderMarkdownWithoutStats(t *testing.T) {
	md := renderMarkdown(&sheetsvc.Result{ArmorStatus: dnd5e.ArmorDetailNone})

	assert.NotContains(t, md, "## Combat")
	assert.Contains(t, md, "Armor detail: **none**")
	assert.NotContains(t, md, "## Warnings")
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, formatJSON, "dark", sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ready", decoded["armor_status"])

	stats, ok := decoded["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 18, stats["armor_class"])
}

func TestWriteResultYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, formatYAML, "dark", sampleResult()))

	var decoded struct {
		Stats struct {
			HitPoints int `yaml:"hit_points"`
		} `yaml:"stats"`
		Warnings []string `yaml:"warnings"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 13, decoded.Stats.HitPoints)
	assert.Len(t, decoded.Warnings, 1)
}

func TestWriteResultMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, formatMarkdown, "notty", sampleResult()))
	assert.Contains(t, buf.String(), "Character Sheet")
}

func TestWriteResultErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeResult(&buf, "xml", "dark", sampleResult()))
	assert.Error(t, writeResult(&buf, formatJSON, "dark", nil))
}

func TestReadSelectionFile(t *testing.T) {
	path := t.TempDir() + "/selection.yaml"
	require.NoError(t, os.WriteFile(path, []byte(`
ability_scores:
  strength: 15
  dexterity: 12
  constitution: 14
  intelligence: 10
  wisdom: 13
  charisma: 8
race_id: dwarf
subrace_id: hill-dwarf
background_id: soldier
classes:
  - class_id: fighter
    level: 1
equipment:
  armor_id: chain-mail
  shield: true
`), 0o600))

	sel, err := readSelectionFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dwarf", sel.RaceID)
	assert.Equal(t, 14, sel.AbilityScores.Constitution)
	require.Len(t, sel.Classes, 1)
	assert.Equal(t, "fighter", sel.Classes[0].ClassID)
	assert.True(t, sel.Equipment.Shield)

	_, err = readSelectionFile(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}
