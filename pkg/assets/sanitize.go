package assets

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height", "fill", "stroke",
				"stroke-width", "stroke-linecap", "stroke-linejoin", "class",
				"opacity", "transform",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")
		policy.AllowAttrs("id", "fill", "stroke", "stroke-width", "transform").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}

// Decorate sets class and role on the root <svg> element, replacing any
// values the asset shipped with. Empty arguments leave the attribute out.
func Decorate(icon Icon, class, role string) string {
	if icon.Markup == "" {
		return ""
	}

	var out bytes.Buffer
	tokenizer := html.NewTokenizer(strings.NewReader(icon.Markup))
	decorated := false
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return icon.Markup
		}
		raw := append([]byte(nil), tokenizer.Raw()...)
		if decorated || (tt != html.StartTagToken && tt != html.SelfClosingTagToken) {
			out.Write(raw)
			continue
		}

		token := tokenizer.Token()
		if token.Data != "svg" {
			out.Write(raw)
			continue
		}
		token.Attr = withAttr(token.Attr, "class", strings.TrimSpace(class))
		token.Attr = withAttr(token.Attr, "role", strings.TrimSpace(role))
		out.WriteString(token.String())
		decorated = true
	}
	return out.String()
}

func withAttr(attrs []html.Attribute, key, value string) []html.Attribute {
	out := attrs[:0]
	for _, attr := range attrs {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		out = append(out, attr)
	}
	if value == "" {
		return out
	}
	return append(out, html.Attribute{Key: key, Val: value})
}
