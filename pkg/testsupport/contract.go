package testsupport

import (
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// TileSelector matches one rendered tile.
const TileSelector = "[data-feature-index]"

// AssertSectionContract checks the structural guarantees every renderer must
// honour for table: one section, one tile per descriptor in table order, each
// tile holding the icon above a heading above the description. Descriptions
// are compared as sanitized markup.
func AssertSectionContract(t *testing.T, markup []byte, table feature.Table, headingTag string) *goquery.Document {
	t.Helper()

	doc := Document(t, markup)
	if got := doc.Find("section").Length(); got != 1 {
		t.Fatalf("expected exactly one section, got %d", got)
	}

	tiles := doc.Find("section " + TileSelector)
	if tiles.Length() != table.Len() {
		t.Fatalf("expected %d tiles, got %d", table.Len(), tiles.Length())
	}

	for i, desc := range table.All() {
		tile := tiles.Eq(i)
		if key, _ := tile.Attr("data-feature-index"); key != strconv.Itoa(i) {
			t.Fatalf("tile %d: expected key %d, got %q", i, i, key)
		}

		parts := tile.Children()
		if parts.Length() != 2 {
			t.Fatalf("tile %d: expected icon wrapper and body, got %d children", i, parts.Length())
		}
		if parts.Eq(0).Find("svg").Length() != 1 {
			t.Fatalf("tile %d: expected icon in first child", i)
		}
		if role, _ := parts.Eq(0).Find("svg").Attr("role"); role != "img" {
			t.Fatalf("tile %d: expected icon role img, got %q", i, role)
		}

		body := parts.Eq(1).Children()
		if body.Length() != 2 || !body.Eq(0).Is(headingTag) || !body.Eq(1).Is("p") {
			t.Fatalf("tile %d: expected %s followed by p in body", i, headingTag)
		}
		if got := body.Eq(0).Text(); got != desc.Title {
			t.Fatalf("tile %d: title mismatch: want %q, got %q", i, desc.Title, got)
		}
		html, err := body.Eq(1).Html()
		if err != nil {
			t.Fatalf("tile %d: description html: %v", i, err)
		}
		if want := string(feature.SanitizeMarkup(desc.Description)); html != want {
			t.Fatalf("tile %d: description mismatch: want %q, got %q", i, want, html)
		}
	}
	return doc
}
