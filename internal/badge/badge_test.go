package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

func TestResolverDefaults(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		category Category
		want     string
	}{
		{CategoryReds, "FF6F6F"},
		{CategoryBlues, "3498DB"},
		{CategoryGreens, "7ED321"},
		{CategoryYellows, "F7CA18"},
		{Category("purples"), ""},
		{Category(""), ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, r.Hex(tc.category), "category %q", tc.category)
	}
}

func TestResolverOverrides(t *testing.T) {
	r := NewResolver(map[string]string{
		"style_greens": "#00FF00",
		"style_reds":   "",
	})

	assert.Equal(t, "00FF00", r.Hex(CategoryGreens), "override applies with hash stripped")
	assert.Equal(t, "FF6F6F", r.Hex(CategoryReds), "empty override keeps the fallback")
	assert.Equal(t, "3498DB", r.Hex(CategoryBlues), "unset override keeps the fallback")
}

func TestViewStatus(t *testing.T) {
	tests := []struct {
		status       int32
		wantHuman    string
		wantCategory Category
	}{
		{1, "Operational", CategoryGreens},
		{2, "Performance Issues", CategoryBlues},
		{3, "Partial Outage", CategoryYellows},
		{4, "Major Outage", CategoryReds},
		{0, "Unknown", Category("")},
		{99, "Unknown", Category("")},
	}

	for _, tc := range tests {
		view := ViewStatus(dto.Component{Status: tc.status})
		assert.Equal(t, tc.wantHuman, view.Human)
		assert.Equal(t, tc.wantCategory, view.Category)
	}
}

func TestSVGRendererProducesSVG(t *testing.T) {
	svg, err := SVGRenderer{}.Render("api", "Operational", "7ED321", DefaultStyle)
	require.NoError(t, err)

	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Operational")
}

func TestSVGRendererUnknownCategoryGetsNeutralColor(t *testing.T) {
	svg, err := SVGRenderer{}.Render("api", "Unknown", "", DefaultStyle)
	require.NoError(t, err)

	assert.Contains(t, string(svg), "<svg")
}
