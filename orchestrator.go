package featuregrid

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/section"
	theme "github.com/goliatone/go-theme"
)

// Descriptor aliases feature.Descriptor for callers building tables in code.
type Descriptor = feature.Descriptor

// Table aliases feature.Table.
type Table = feature.Table

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewTable builds an immutable descriptor table.
func NewTable(descs ...Descriptor) Table {
	return feature.NewTable(descs...)
}

// DefaultTable returns the built-in homepage feature list.
func DefaultTable() Table {
	return feature.Default()
}

// GenerateHTML builds the features section and renders it with the named
// renderer ("vanilla" when empty). It is the simplest entry point for callers
// that just want HTML output.
func GenerateHTML(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Renderer: rendererName,
	})
}

// WithTable renders table instead of the built-in list.
func WithTable(table Table) orchestrator.Option {
	return orchestrator.WithTable(table)
}

// WithIconsFS resolves icon references against files instead of the embedded
// illustrations.
func WithIconsFS(files fs.FS, options ...assets.Option) orchestrator.Option {
	return orchestrator.WithResolver(assets.Cached(assets.NewFSResolver(files, options...)))
}

// WithHeadingLevel changes the semantic level of tile titles.
func WithHeadingLevel(level int) orchestrator.Option {
	return orchestrator.WithSectionOptions(section.WithHeadingLevel(level))
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemes registers go-theme manifests behind an in-memory selector.
func WithThemes(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemes(defaultTheme, defaultVariant, manifests...)
}
