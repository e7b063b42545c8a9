package assets

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

func TestDefaultResolvesBundledIcons(t *testing.T) {
	resolver := Default()
	for _, desc := range feature.Default().All() {
		icon, err := resolver.Resolve(desc.Icon)
		if err != nil {
			t.Fatalf("resolve %q: %v", desc.Icon, err)
		}
		if icon.Ref != desc.Icon {
			t.Fatalf("ref mismatch: want %q, got %q", desc.Icon, icon.Ref)
		}
		if !strings.HasPrefix(icon.Markup, "<svg") {
			t.Fatalf("expected svg markup for %q, got %q", desc.Icon, icon.Markup)
		}
	}
}

func TestFSResolverAppendsExtension(t *testing.T) {
	files := fstest.MapFS{
		"icons/star.svg": {Data: []byte(`<svg viewBox="0 0 1 1"><path d="M0 0"/></svg>`)},
	}
	resolver := NewFSResolver(files, WithPrefix("icons"))

	icon, err := resolver.Resolve("star")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(icon.Markup, "<path") {
		t.Fatalf("expected path element, got %q", icon.Markup)
	}
}

func TestFSResolverMissingIcon(t *testing.T) {
	resolver := NewFSResolver(fstest.MapFS{})
	_, err := resolver.Resolve("nope.svg")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
}

func TestFSResolverRejectsNonSVG(t *testing.T) {
	files := fstest.MapFS{
		"bad.svg": {Data: []byte(`<div>not an icon</div>`)},
	}
	_, err := NewFSResolver(files).Resolve("bad.svg")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
}

func TestFSResolverRejectsTraversal(t *testing.T) {
	_, err := NewFSResolver(fstest.MapFS{}).Resolve("../secret.svg")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
}

func TestSanitizeIconMarkupRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24"><script>alert('x')</script><path d="M0 0h24v24H0z" onload="x()"/></svg>`
	got := sanitizeIconMarkup(input)
	if strings.Contains(got, "script") || strings.Contains(got, "onload") {
		t.Fatalf("expected active content removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg/path elements to remain, got %q", got)
	}
}

func TestCachedResolverMemoizesSuccess(t *testing.T) {
	var calls atomic.Int32
	base := ResolverFunc(func(ref feature.IconRef) (Icon, error) {
		calls.Add(1)
		if ref == "missing" {
			return Icon{}, ErrIconNotFound
		}
		return Icon{Ref: ref, Markup: "<svg></svg>"}, nil
	})
	cached := Cached(base)

	for i := 0; i < 3; i++ {
		if _, err := cached.Resolve("ok"); err != nil {
			t.Fatalf("resolve: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one underlying call, got %d", got)
	}

	for i := 0; i < 2; i++ {
		if _, err := cached.Resolve("missing"); err == nil {
			t.Fatalf("expected error")
		}
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("failures should not be cached, got %d calls", got)
	}

	if again := Cached(cached); again != cached {
		t.Fatalf("expected Cached to avoid double wrapping")
	}
}

func TestResolveAllAggregatesFailures(t *testing.T) {
	table := feature.NewTable(
		feature.Descriptor{Title: "ok", Icon: feature.IconTree},
		feature.Descriptor{Title: "bad", Icon: "missing.svg"},
		feature.Descriptor{Title: "worse", Icon: "gone.svg"},
	)

	_, err := ResolveAll(table, Default())
	var resolveErr *ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected ResolveError, got %v", err)
	}
	if len(resolveErr.Failures) != 2 {
		t.Fatalf("expected two failures, got %d", len(resolveErr.Failures))
	}
	if resolveErr.Failures[0].Index != 1 || resolveErr.Failures[1].Index != 2 {
		t.Fatalf("unexpected failure indexes: %+v", resolveErr.Failures)
	}
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected errors.Is to reach ErrIconNotFound")
	}
	if !strings.Contains(err.Error(), "missing.svg") {
		t.Fatalf("expected message to name the reference, got %q", err.Error())
	}
}

func TestResolveAllEmptyTable(t *testing.T) {
	icons, err := ResolveAll(feature.Table{}, Default())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(icons) != 0 {
		t.Fatalf("expected no icons, got %d", len(icons))
	}
}
