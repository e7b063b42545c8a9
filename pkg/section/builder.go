package section

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// Option customises Build.
type Option func(*config)

type config struct {
	headingLevel int
	classes      map[string]string
	iconRole     string
}

// WithHeadingLevel changes the title heading level. Values are clamped to 1..6.
func WithHeadingLevel(level int) Option {
	return func(cfg *config) {
		switch {
		case level < 1:
			cfg.headingLevel = 1
		case level > 6:
			cfg.headingLevel = 6
		default:
			cfg.headingLevel = level
		}
	}
}

// WithClasses overrides class names per slot (see Slot* constants).
func WithClasses(overrides map[string]string) Option {
	return func(cfg *config) {
		if len(overrides) == 0 {
			return
		}
		if cfg.classes == nil {
			cfg.classes = make(map[string]string, len(overrides))
		}
		for slot, value := range overrides {
			cfg.classes[strings.TrimSpace(slot)] = value
		}
	}
}

// WithIconRole sets the role attribute applied to each icon. Defaults to "img".
func WithIconRole(role string) Option {
	return func(cfg *config) {
		cfg.iconRole = strings.TrimSpace(role)
	}
}

// Build resolves every icon in table and produces the section. It fails only
// when icons cannot be resolved; the error is an *assets.ResolveError naming
// every broken entry.
func Build(table feature.Table, resolver assets.Resolver, options ...Option) (Section, error) {
	cfg := config{
		headingLevel: DefaultHeadingLevel,
		iconRole:     "img",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	icons, err := assets.ResolveAll(table, resolver)
	if err != nil {
		return Section{}, fmt.Errorf("section: build: %w", err)
	}

	classes := DefaultClasses().Merge(cfg.classes)
	tiles := make([]Tile, 0, table.Len())
	for i, desc := range table.All() {
		tiles = append(tiles, Tile{
			Key:          i,
			Title:        desc.Title,
			Icon:         assets.Decorate(icons[i], classes.Icon, cfg.iconRole),
			Description:  feature.SanitizeMarkup(desc.Description),
			HeadingLevel: cfg.headingLevel,
		})
	}

	return Section{Tiles: tiles, Classes: classes}, nil
}
