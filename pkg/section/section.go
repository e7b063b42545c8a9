package section

import (
	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// DefaultHeadingLevel is the semantic level used for tile titles.
const DefaultHeadingLevel = 3

// Tile is one rendered feature: icon above title above description.
type Tile struct {
	// Key is the tile's position in the source table.
	Key   int    `json:"key"`
	Title string `json:"title"`
	// Icon is sanitized SVG markup already decorated with the icon class and
	// role attribute.
	Icon        string         `json:"icon"`
	Description feature.Markup `json:"description"`
	// HeadingLevel is within 1..6 once built. Renderers read it through
	// Level so hand-built tiles stay valid.
	HeadingLevel int `json:"heading_level"`
}

// Level returns the heading level renderers emit for the tile.
func (t Tile) Level() int {
	return NormalizeHeadingLevel(t.HeadingLevel)
}

// NormalizeHeadingLevel returns level when it is a valid HTML heading level
// and DefaultHeadingLevel otherwise.
func NormalizeHeadingLevel(level int) int {
	if level < 1 || level > 6 {
		return DefaultHeadingLevel
	}
	return level
}

// Section is the full grid.
type Section struct {
	Tiles   []Tile  `json:"tiles"`
	Classes Classes `json:"classes"`
}

// Len reports the number of tiles.
func (s Section) Len() int {
	return len(s.Tiles)
}
