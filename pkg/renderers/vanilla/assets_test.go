package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".features") {
		t.Fatalf("expected stylesheet to style the features section")
	}
}

func TestTemplatesFSIncludesSectionAndTile(t *testing.T) {
	for _, name := range []string{"templates/section.tmpl", "templates/tile.tmpl"} {
		if _, err := fs.Stat(TemplatesFS(), name); err != nil {
			t.Fatalf("expected %s in template bundle: %v", name, err)
		}
	}
}
