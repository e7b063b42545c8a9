package assets

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// Failure records one unresolved reference and the tile it belongs to.
type Failure struct {
	Index int
	Ref   feature.IconRef
	Err   error
}

// ResolveError aggregates every unresolved icon in a table.
type ResolveError struct {
	Failures []Failure
}

func (e *ResolveError) Error() string {
	if e == nil || len(e.Failures) == 0 {
		return "assets: unresolved icons"
	}
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, fmt.Sprintf("#%d %q: %v", failure.Index, failure.Ref, failure.Err))
	}
	return fmt.Sprintf("assets: %d unresolved icon(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is/As.
func (e *ResolveError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.Failures))
	for _, failure := range e.Failures {
		out = append(out, failure.Err)
	}
	return out
}

// ResolveAll resolves every icon in table order. All failures are collected
// so a single build reports every broken entry.
func ResolveAll(table feature.Table, resolver Resolver) ([]Icon, error) {
	if resolver == nil {
		return nil, fmt.Errorf("assets: resolver is required")
	}

	icons := make([]Icon, table.Len())
	var failures []Failure
	for i, desc := range table.All() {
		icon, err := resolver.Resolve(desc.Icon)
		if err != nil {
			failures = append(failures, Failure{Index: i, Ref: desc.Icon, Err: err})
			continue
		}
		icons[i] = icon
	}
	if len(failures) > 0 {
		return nil, &ResolveError{Failures: failures}
	}
	return icons, nil
}
