package render

import (
	"sort"
	"strings"
)

// RenderOptions describe per-request data renderers can use to customise
// their output without rebuilding the section.
type RenderOptions struct {
	// Theme carries the resolved theme selection. Nil renders unthemed markup.
	Theme *ThemeConfig
}

// ThemeConfig is the renderer-facing view of a go-theme selection.
type ThemeConfig struct {
	Name    string
	Variant string
	Tokens  map[string]string
	// CSSVars are derived from Tokens ("brand" -> "--brand").
	CSSVars map[string]string
	// Stylesheet is the resolved URL of the theme stylesheet, if any.
	Stylesheet string
}

// InlineStyle serialises CSSVars as a style attribute value with keys in
// sorted order so output stays stable between renders.
func (c *ThemeConfig) InlineStyle() string {
	if c == nil || len(c.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(c.CSSVars))
	for key := range c.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+c.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
