// Package armordetail provides the interface for armor detail caching
package armordetail

//go:generate mockgen -destination=mock/mock_repository.go -package=armordetailmock github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository defines the interface for armor detail persistence
type Repository interface {
	// Get retrieves a cached armor detail
	// Returns errors.InvalidArgument for empty armor IDs
	// Returns errors.NotFound if nothing is cached
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put caches an armor detail, replacing any previous entry
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting an armor detail
type GetInput struct {
	ArmorID string
}

// GetOutput defines the output for getting an armor detail
type GetOutput struct {
	Detail    *dnd5e.ArmorDetail
	FetchedAt time.Time
}

// PutInput defines the input for caching an armor detail
type PutInput struct {
	Detail *dnd5e.ArmorDetail
}

// PutOutput defines the output for caching an armor detail
type PutOutput struct {
	FetchedAt time.Time
}
