package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestWithSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
race_id: elf
subrace_id: high-elf
classes:
  - class_id: wizard
    level: 2
ability_scores:
  dexterity: 14
`), 0o600))

	req, err := buildRequest(path, map[string]any{"session_id": "sheet_1", "wait_for_armor": true})
	require.NoError(t, err)

	fields := req.AsMap()
	assert.Equal(t, "sheet_1", fields["session_id"])
	assert.Equal(t, true, fields["wait_for_armor"])

	selection, ok := fields["selection"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "elf", selection["race_id"])
	assert.Equal(t, float64(14), selection["ability_scores"].(map[string]any)["dexterity"])
	assert.Len(t, selection["classes"], 1)
}

func TestBuildRequestWithoutSelection(t *testing.T) {
	req, err := buildRequest("", nil)
	require.NoError(t, err)
	assert.Empty(t, req.AsMap())
}

func TestBuildRequestMissingFile(t *testing.T) {
	_, err := buildRequest(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
