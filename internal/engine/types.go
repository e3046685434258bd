package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// ComputeInput is one snapshot to compute
type ComputeInput struct {
	Selection   *dnd5e.Selection
	ArmorDetail *dnd5e.ArmorDetail
	ArmorStatus dnd5e.ArmorDetailStatus
	// RollHitPoints rolls hit dice for levels after the first instead of taking the average
	RollHitPoints bool
}

// ComputeOutput is the full derived sheet
type ComputeOutput struct {
	Stats    *dnd5e.DerivedStats
	Tools    *dnd5e.ProficiencyBundle
	Skills   *dnd5e.ProficiencyBundle
	Warnings []string
}
