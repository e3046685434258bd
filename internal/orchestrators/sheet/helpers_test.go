package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
)

func newTestEngine(t *testing.T, cat *catalog.Catalog) engine.Engine {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{Catalog: cat})
	require.NoError(t, err)
	return adapter
}
