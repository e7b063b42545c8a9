package orchestrator

import (
	"context"

	"github.com/goliatone/go-featuregrid/pkg/section"
)

// Transformer adjusts a built section before it is rendered. Implementations
// may rewrite tiles or classes but should not reorder tiles.
type Transformer interface {
	Transform(ctx context.Context, sec *section.Section) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, sec *section.Section) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, sec *section.Section) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, sec)
}
