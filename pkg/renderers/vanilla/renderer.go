package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-featuregrid/pkg/render"
	rendertemplate "github.com/goliatone/go-featuregrid/pkg/render/template"
	gotemplate "github.com/goliatone/go-featuregrid/pkg/render/template/gotemplate"
	"github.com/goliatone/go-featuregrid/pkg/section"
)

// Name is the registry key for this renderer.
const Name = "vanilla"

const sectionTemplate = "templates/section.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles embeds the default stylesheet in a <style> element inside
// the section, for hosts without an asset pipeline.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// Renderer renders a section through pongo2 templates.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	out := &Renderer{templates: renderer}
	if cfg.inlineStyles {
		out.inlineStyles = defaultStylesheet()
	}
	return out, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, sec section.Section, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(sectionTemplate, r.viewContext(sec, opts.Theme))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) viewContext(sec section.Section, theme *render.ThemeConfig) map[string]any {
	tiles := make([]section.Tile, len(sec.Tiles))
	for i, tile := range sec.Tiles {
		tile.HeadingLevel = tile.Level()
		tiles[i] = tile
	}
	ctx := map[string]any{
		"classes":       sec.Classes,
		"tiles":         tiles,
		"inline_styles": r.inlineStyles,
		"theme_style":   theme.InlineStyle(),
	}
	if theme != nil {
		ctx["theme_name"] = theme.Name
		ctx["theme_variant"] = theme.Variant
		ctx["stylesheet"] = theme.Stylesheet
	}
	return ctx
}
