package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/renderers/nodes"
	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
	"github.com/goliatone/go-featuregrid/pkg/section"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithTable replaces the built-in feature table.
func WithTable(table feature.Table) Option {
	return func(o *Orchestrator) {
		o.table = table
		o.tableSpecified = true
	}
}

// WithResolver injects the icon resolver.
func WithResolver(resolver assets.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSectionOptions forwards options to section.Build.
func WithSectionOptions(options ...section.Option) Option {
	return func(o *Orchestrator) {
		o.sectionOptions = append(o.sectionOptions, options...)
	}
}

// WithTransformer registers a Transformer that can adjust the built section
// before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemes registers manifests behind an in-memory selector. Requests that
// omit a theme fall back to defaultTheme/defaultVariant.
func WithThemes(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themeSelector = NewManifestSelector(defaultTheme, defaultVariant, manifests...)
	}
}

// Orchestrator coordinates the pipeline from descriptor table to rendered
// output. It applies sensible defaults (built-in table, embedded icons,
// vanilla renderer) while remaining open to dependency injection. A zero
// Orchestrator is usable and safe for concurrent Generate calls; options
// can only be applied through New.
type Orchestrator struct {
	table           feature.Table
	tableSpecified  bool
	resolver        assets.Resolver
	registry        *render.Registry
	defaultRenderer string
	sectionOptions  []section.Option
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	initialiseErr   error
	defaultsOnce    sync.Once
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string
}

// Build performs the build-time step: every icon is resolved and every
// description sanitized. Unresolved icons fail here, never during Render.
func (o *Orchestrator) Build(ctx context.Context) (section.Section, error) {
	return o.build(ctx, nil)
}

// Generate builds the section and renders it with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	themeCfg, classes, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	sec, err := o.build(ctx, classes)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, sec, render.RenderOptions{Theme: themeCfg})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the registered renderer names in registration order, so
// the default renderer comes first.
func (o *Orchestrator) Renderers() []string {
	o.applyDefaults()
	if o.registry == nil {
		return nil
	}
	return o.registry.Names()
}

// Table returns the configured descriptor table.
func (o *Orchestrator) Table() feature.Table {
	o.applyDefaults()
	return o.table
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	o.applyDefaults()
	return o.initialiseErr
}

func (o *Orchestrator) build(ctx context.Context, classes map[string]string) (section.Section, error) {
	if err := o.ready(ctx); err != nil {
		return section.Section{}, err
	}

	options := o.sectionOptions
	if len(classes) > 0 {
		options = append(append([]section.Option(nil), options...), section.WithClasses(classes))
	}

	sec, err := section.Build(o.table, o.resolver, options...)
	if err != nil {
		return section.Section{}, fmt.Errorf("orchestrator: %w", err)
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &sec); err != nil {
			return section.Section{}, fmt.Errorf("orchestrator: transform section: %w", err)
		}
	}
	return sec, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Preferred()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: no renderers registered: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsOnce.Do(o.setDefaults)
}

func (o *Orchestrator) setDefaults() {
	if !o.tableSpecified {
		o.table = feature.Default()
	}
	if o.resolver == nil {
		o.resolver = assets.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(nodes.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
