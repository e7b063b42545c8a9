package feature

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup strips everything but inline formatting from a description.
// Plain text passes through untouched apart from HTML escaping of stray
// angle brackets and ampersands.
func SanitizeMarkup(raw Markup) Markup {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	return Markup(strings.TrimSpace(markupSanitizer().Sanitize(trimmed)))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br", "span", "small")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("class").OnElements("span", "code")
		markupPolicy = policy
	})
	return markupPolicy
}
