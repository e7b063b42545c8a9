// Package section is the renderer-agnostic intermediate representation of the
// features section. Build performs every fallible step (icon resolution,
// markup sanitizing) up front; renderers consume the resulting Section and
// cannot fail on its content.
package section
