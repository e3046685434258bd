// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/services/sheet Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Stateless computation
	ComputeSheet(ctx context.Context, input *ComputeSheetInput) (*ComputeSheetOutput, error)

	// Live sessions that recompute as the selection changes
	OpenSession(ctx context.Context, input *OpenSessionInput) (*OpenSessionOutput, error)
	UpdateSelection(ctx context.Context, input *UpdateSelectionInput) (*UpdateSelectionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)
}

// Result is one computed sheet
type Result struct {
	Stats       *dnd5e.DerivedStats
	Tools       *dnd5e.ProficiencyBundle
	Skills      *dnd5e.ProficiencyBundle
	Warnings    []string
	ArmorStatus dnd5e.ArmorDetailStatus
	// Revision increases with every recomputation of a session
	Revision int
}

// ComputeSheetInput defines the request for a one-off computation
type ComputeSheetInput struct {
	Selection *dnd5e.Selection
	// RollHitPoints rolls hit dice after the first level instead of averaging
	RollHitPoints bool
}

// ComputeSheetOutput defines the response for a one-off computation
type ComputeSheetOutput struct {
	Result *Result
}

// OpenSessionInput defines the request for opening a session
type OpenSessionInput struct {
	Selection *dnd5e.Selection // Optional
}

// OpenSessionOutput defines the response for opening a session
type OpenSessionOutput struct {
	SessionID string
	Result    *Result
}

// UpdateSelectionInput defines the request for replacing a session's selection
type UpdateSelectionInput struct {
	SessionID string
	Selection *dnd5e.Selection
	// WaitForArmor blocks until the armor lookup started by this update settles
	WaitForArmor bool
}

// UpdateSelectionOutput defines the response for replacing a session's selection
type UpdateSelectionOutput struct {
	Result *Result
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Selection *dnd5e.Selection
	Result    *Result
}

// CloseSessionInput defines the request for closing a session
type CloseSessionInput struct {
	SessionID string
}

// CloseSessionOutput defines the response for closing a session
type CloseSessionOutput struct{}
