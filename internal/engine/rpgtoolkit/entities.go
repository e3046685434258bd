package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// SheetEntityType is the rpg-toolkit entity type of a live character sheet
const SheetEntityType = "character_sheet"

// SheetEntity identifies a sheet session to the rpg-toolkit event bus
type SheetEntity struct {
	ID string
}

// NewSheetEntity wraps a session id as a core.Entity
func NewSheetEntity(id string) *SheetEntity {
	return &SheetEntity{ID: id}
}

// GetID returns the sheet session id
func (e *SheetEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *SheetEntity) GetType() string {
	return SheetEntityType
}

var _ core.Entity = (*SheetEntity)(nil)
