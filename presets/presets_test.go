package presets_test

import (
	"testing"

	"github.com/dallen2021/AeroStack/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestList_OrderAndContent pins the curated ordering and derived metrics.
func TestList_OrderAndContent(t *testing.T) {
	list := presets.List()
	require.Len(t, list, 11)
	assert.Equal(t, "naca-0012", list[0].ID, "catalog leads with the symmetric baseline")
	assert.Equal(t, "naca-9306", list[len(list)-1].ID)

	for _, p := range list {
		assert.Equal(t, presets.FamilyNACA4, p.Family)
		assert.Len(t, p.Digits, 4)
		assert.NotEmpty(t, p.Label)
		assert.NotEmpty(t, p.Tags)
	}

	p2412, err := presets.Get("naca-2412")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p2412.Metrics.MaxCamberPct, 1e-9)
	assert.InDelta(t, 40.0, p2412.Metrics.MaxCamberXPct, 1e-9)
	assert.InDelta(t, 12.0, p2412.Metrics.ThicknessPct, 1e-9)
}

// TestList_ReturnsCopy: mutating the returned slice must not corrupt the
// catalog.
func TestList_ReturnsCopy(t *testing.T) {
	list := presets.List()
	list[0].Label = "mutated"
	assert.Equal(t, "NACA 0012", presets.List()[0].Label)
}

// TestGet_Unknown returns the sentinel for unknown ids.
func TestGet_Unknown(t *testing.T) {
	_, err := presets.Get("naca-1337")
	assert.ErrorIs(t, err, presets.ErrUnknownPreset)
}

// TestGenerate builds geometry for every catalog entry.
func TestGenerate(t *testing.T) {
	for _, p := range presets.List() {
		g, err := presets.Generate(p.ID, 1.0, 120)
		require.NoError(t, err, p.ID)
		assert.Equal(t, 120, g.N())
		assert.Equal(t, p.Digits, g.Code.String())
	}

	_, err := presets.Generate("nope", 1.0, 120)
	assert.ErrorIs(t, err, presets.ErrUnknownPreset)
}
