package badge

import (
	"fmt"

	gobadge "github.com/narqo/go-badge"
)

// Renderer draws an SVG badge. The hex color carries no leading '#'; an
// empty hex means the category was unknown and the renderer picks a
// neutral color.
type Renderer interface {
	Render(label, status, hex, style string) ([]byte, error)
}

// SVGRenderer renders via narqo/go-badge. The library draws the
// flat-square geometry; other style names are accepted and treated as a
// hint, falling back to the same drawing.
type SVGRenderer struct{}

func (SVGRenderer) Render(label, status, hex, style string) ([]byte, error) {
	color := gobadge.Color("lightgrey")
	if hex != "" {
		color = gobadge.Color("#" + hex)
	}

	svg, err := gobadge.RenderBytes(label, status, color)
	if err != nil {
		return nil, fmt.Errorf("rendering badge for %q: %w", label, err)
	}

	return svg, nil
}
