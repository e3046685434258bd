// Package engine computes a character sheet from a selection snapshot
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"
)

// Engine resolves derived stats and proficiencies. Domain conditions (missing or
// unknown selections, missing armor detail) degrade to defaults; only a malformed
// call returns an error.
type Engine interface {
	Compute(ctx context.Context, input *ComputeInput) (*ComputeOutput, error)

	// Utility methods
	CalculateAbilityModifier(score int) int
}
