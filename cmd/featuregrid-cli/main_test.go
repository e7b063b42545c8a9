package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
)

type fixedPrompter struct {
	index int
	err   error
	got   []string
	def   int
}

func (p *fixedPrompter) Select(_ context.Context, _ string, options []string, defaultIndex int) (int, error) {
	p.got = options
	p.def = defaultIndex
	return p.index, p.err
}

func TestChooseRenderer(t *testing.T) {
	p := &fixedPrompter{index: 0}
	name, err := chooseRenderer(context.Background(), p, []string{"nodes", "vanilla"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if name != "nodes" {
		t.Fatalf("expected nodes, got %q", name)
	}
	if p.def != 1 {
		t.Fatalf("expected vanilla as default option, got index %d", p.def)
	}
}

func TestChooseRendererSingleOptionSkipsPrompt(t *testing.T) {
	p := &fixedPrompter{err: errors.New("should not prompt")}
	name, err := chooseRenderer(context.Background(), p, []string{"vanilla"})
	if err != nil || name != "vanilla" {
		t.Fatalf("expected vanilla without prompting, got %q, %v", name, err)
	}
}

func TestChooseRendererOutOfRange(t *testing.T) {
	if _, err := chooseRenderer(context.Background(), &fixedPrompter{index: 5}, []string{"a", "b"}); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestBuildOptionsAndCheck(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.svg"), []byte(`<svg><rect width="1" height="1"/></svg>`), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}
	doc := filepath.Join(dir, "features.json")
	payload := `{"features":[{"title":"Ok","icon":"ok.svg"},{"title":"Broken","icon":"broken.svg"}]}`
	if err := os.WriteFile(doc, []byte(payload), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	options, err := buildOptions(doc, dir)
	if err != nil {
		t.Fatalf("build options: %v", err)
	}
	err = runCheck(context.Background(), orchestrator.New(options...))
	var resolveErr *assets.ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected ResolveError, got %v", err)
	}
	if len(resolveErr.Failures) != 1 || resolveErr.Failures[0].Ref != "broken.svg" {
		t.Fatalf("unexpected failures: %+v", resolveErr.Failures)
	}
}

func TestBuildOptionsRejectsMissingIconsDir(t *testing.T) {
	if _, err := buildOptions("", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing icons directory")
	}
}

func TestRunCheckDefaults(t *testing.T) {
	if err := runCheck(context.Background(), orchestrator.New()); err != nil {
		t.Fatalf("expected built-in table to resolve, got %v", err)
	}
}
