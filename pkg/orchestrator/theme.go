package orchestrator

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/render"
	theme "github.com/goliatone/go-theme"
)

const (
	// StylesheetAssetKey names the manifest asset used as the section
	// stylesheet.
	StylesheetAssetKey = "featuregrid.stylesheet"
	// ClassTokenPrefix marks tokens that override section class slots, e.g.
	// "class.column": "col col--6".
	ClassTokenPrefix = "class."
)

// ManifestSelector is an in-memory theme.ThemeSelector over a fixed set of
// manifests.
type ManifestSelector struct {
	defaultTheme   string
	defaultVariant string
	manifests      map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by name. Nil manifests are skipped.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
	}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		s.manifests[strings.TrimSpace(manifest.Name)] = manifest
	}
	return s
}

// Select returns the named theme, or the default when name is empty. An
// unknown variant resolves to the base theme.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("orchestrator: theme %q not registered", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

// Themes lists registered theme names.
func (s *ManifestSelector) Themes() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *Orchestrator) resolveTheme(req Request) (*render.ThemeConfig, map[string]string, error) {
	if o.themeSelector == nil {
		return nil, nil, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	cfg, classes := themeConfig(selection)
	return cfg, classes, nil
}

// themeConfig flattens a selection: variant tokens and asset files override
// the base manifest, class.* tokens become class overrides, and the remaining
// tokens become CSS variables.
func themeConfig(selection *theme.Selection) (*render.ThemeConfig, map[string]string) {
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}
	manifest := selection.Manifest

	tokens := copyStringMap(manifest.Tokens)
	files := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[selection.Variant]; ok && selection.Variant != "" {
		tokens = mergeStringMaps(tokens, variant.Tokens)
		files = mergeStringMaps(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cfg := &render.ThemeConfig{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  make(map[string]string, len(tokens)),
	}
	var classes map[string]string
	for key, value := range tokens {
		if slot, ok := strings.CutPrefix(key, ClassTokenPrefix); ok {
			if classes == nil {
				classes = make(map[string]string)
			}
			classes[slot] = value
			continue
		}
		cfg.Tokens[key] = value
		if cfg.CSSVars == nil {
			cfg.CSSVars = make(map[string]string)
		}
		cfg.CSSVars["--"+key] = value
	}
	cfg.Stylesheet = assetURL(prefix, files[StylesheetAssetKey])
	return cfg, classes
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return file
	}
	if strings.Contains(prefix, "://") {
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}
	return path.Join(prefix, file)
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMaps(base, overrides map[string]string) map[string]string {
	for key, value := range overrides {
		base[key] = value
	}
	return base
}
