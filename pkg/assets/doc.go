// Package assets resolves the opaque icon references held by feature
// descriptors into sanitized inline SVG markup. Resolution is a build-time
// concern: callers resolve every reference before rendering so that a broken
// reference surfaces as an error instead of a half-rendered section.
package assets
