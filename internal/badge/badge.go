// Package badge resolves a component's status into the label, text and
// color a status badge is rendered with.
package badge

import (
	"strings"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// DefaultStyle is used when a request does not name a badge style.
const DefaultStyle = "flat-square"

// Category is a component's status color family.
type Category string

const (
	CategoryReds    Category = "reds"
	CategoryBlues   Category = "blues"
	CategoryGreens  Category = "greens"
	CategoryYellows Category = "yellows"
)

type colorSpec struct {
	fallback    string
	overrideKey string
}

// One row per category keeps the hex fallbacks in a single table instead
// of scattered through conditionals.
var colorTable = map[Category]colorSpec{
	CategoryReds:    {fallback: "FF6F6F", overrideKey: "style_reds"},
	CategoryBlues:   {fallback: "3498DB", overrideKey: "style_blues"},
	CategoryGreens:  {fallback: "7ED321", overrideKey: "style_greens"},
	CategoryYellows: {fallback: "F7CA18", overrideKey: "style_yellows"},
}

// Resolver maps categories to hex colors, honoring configured overrides.
type Resolver struct {
	overrides map[string]string
}

// NewResolver builds a resolver from configured override colors, keyed by
// the category override keys ("style_reds" etc).
func NewResolver(overrides map[string]string) *Resolver {
	return &Resolver{overrides: overrides}
}

// Hex returns the category's hex color without a leading '#', or "" for
// an unknown category.
func (r *Resolver) Hex(c Category) string {
	spec, ok := colorTable[c]
	if !ok {
		return ""
	}

	hex := spec.fallback
	if override, ok := r.overrides[spec.overrideKey]; ok && override != "" {
		hex = override
	}

	return strings.TrimPrefix(hex, "#")
}

// StatusView is the presentation view of a component's status, computed
// from entity state rather than decorated onto it.
type StatusView struct {
	Human    string
	Category Category
}

// ViewStatus maps a component status code to its presentation view.
// Unknown codes yield an empty category, which resolves to no color.
func ViewStatus(c dto.Component) StatusView {
	switch c.Status {
	case 1:
		return StatusView{Human: "Operational", Category: CategoryGreens}
	case 2:
		return StatusView{Human: "Performance Issues", Category: CategoryBlues}
	case 3:
		return StatusView{Human: "Partial Outage", Category: CategoryYellows}
	case 4:
		return StatusView{Human: "Major Outage", Category: CategoryReds}
	default:
		return StatusView{Human: "Unknown"}
	}
}
