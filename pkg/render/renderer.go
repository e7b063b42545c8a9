package render

import (
	"context"

	"github.com/goliatone/go-featuregrid/pkg/section"
)

// Renderer converts a built Section into a byte representation (HTML today).
// Implementations hold no per-call state and may be shared across goroutines.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, sec section.Section, options RenderOptions) ([]byte, error)
}
