package featuregrid

import (
	"io/fs"

	"github.com/goliatone/go-featuregrid/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedStyles exposes the default stylesheet bundle.
func EmbeddedStyles() fs.FS {
	return vanilla.AssetsFS()
}
