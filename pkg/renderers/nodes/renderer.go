package nodes

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/section"
)

// Name is the registry key for this renderer.
const Name = "nodes"

// Renderer adapts Section to the render.Renderer contract.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the node-tree renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return Name
}

func (Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (Renderer) Render(_ context.Context, sec section.Section, opts render.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Section(sec, opts.Theme).Render(&buf); err != nil {
		return nil, fmt.Errorf("nodes renderer: render section: %w", err)
	}
	return buf.Bytes(), nil
}
