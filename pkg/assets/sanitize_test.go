package assets

import (
	"strings"
	"testing"
)

func TestDecorateSetsClassAndRole(t *testing.T) {
	icon := Icon{Markup: `<svg class="old" viewbox="0 0 1 1"><g class="inner"><path d="M0 0"/></g></svg>`}

	got := Decorate(icon, "featureSvg", "img")

	if !strings.HasPrefix(got, `<svg viewbox="0 0 1 1" class="featureSvg" role="img">`) {
		t.Fatalf("unexpected root element: %q", got)
	}
	if strings.Contains(got, `class="old"`) {
		t.Fatalf("expected previous class replaced, got %q", got)
	}
	if !strings.Contains(got, `<g class="inner">`) {
		t.Fatalf("expected nested elements untouched, got %q", got)
	}
}

func TestDecorateOmitsEmptyAttributes(t *testing.T) {
	got := Decorate(Icon{Markup: `<svg role="presentation"></svg>`}, "", "")
	if got != `<svg></svg>` {
		t.Fatalf("unexpected markup: %q", got)
	}
}

func TestDecorateEmptyIcon(t *testing.T) {
	if got := Decorate(Icon{}, "featureSvg", "img"); got != "" {
		t.Fatalf("expected empty markup, got %q", got)
	}
}
