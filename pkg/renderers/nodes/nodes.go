package nodes

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/section"
)

// Tile maps one built tile to its column: icon wrapper, then a body holding
// the heading and description.
func Tile(tile section.Tile, classes section.Classes) g.Node {
	return h.Div(
		classAttr(classes.Column),
		g.Attr("data-feature-index", strconv.Itoa(tile.Key)),
		h.Div(classAttr(classes.IconWrapper), g.Raw(tile.Icon)),
		h.Div(
			classAttr(classes.Body),
			Heading(tile.Level(), tile.Title),
			h.P(g.Raw(string(tile.Description))),
		),
	)
}

// Heading renders <hN> with escaped text. Out-of-range levels fall back to h3.
func Heading(level int, text string) g.Node {
	return g.El("h"+strconv.Itoa(section.NormalizeHeadingLevel(level)), g.Text(text))
}

// Section wraps every tile, in order, inside the section/container/row
// scaffold. Theme data, when present, adds CSS variables and the stylesheet.
func Section(sec section.Section, theme *render.ThemeConfig) g.Node {
	tiles := make([]g.Node, 0, len(sec.Tiles))
	for _, tile := range sec.Tiles {
		tiles = append(tiles, Tile(tile, sec.Classes))
	}

	children := []g.Node{classAttr(sec.Classes.Section)}
	if style := theme.InlineStyle(); style != "" {
		children = append(children, g.Attr("style", style))
	}
	if theme != nil {
		if theme.Name != "" {
			children = append(children, g.Attr("data-theme", theme.Name))
		}
		if theme.Variant != "" {
			children = append(children, g.Attr("data-theme-variant", theme.Variant))
		}
		if theme.Stylesheet != "" {
			children = append(children, h.Link(h.Rel("stylesheet"), h.Href(theme.Stylesheet)))
		}
	}
	children = append(children,
		h.Div(
			classAttr(sec.Classes.Container),
			h.Div(append([]g.Node{classAttr(sec.Classes.Row)}, tiles...)...),
		),
	)
	return h.Section(children...)
}

func classAttr(value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Class(value)
}
