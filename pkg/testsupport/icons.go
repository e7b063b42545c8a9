package testsupport

import (
	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// FixedIconMarkup is returned by FixedIcons for every reference.
const FixedIconMarkup = `<svg viewbox="0 0 64 64"><circle cx="32" cy="32" r="30"></circle></svg>`

// FixedIcons resolves every reference to FixedIconMarkup so snapshots stay
// stable when the bundled illustrations change.
func FixedIcons() assets.Resolver {
	return assets.ResolverFunc(func(ref feature.IconRef) (assets.Icon, error) {
		return assets.Icon{Ref: ref, Markup: FixedIconMarkup}, nil
	})
}
