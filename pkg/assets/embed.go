package assets

import (
	"embed"
	"io/fs"
)

//go:embed icons/*.svg
var embeddedIcons embed.FS

// EmbeddedFS exposes the bundled default illustrations.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedIcons, "icons")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns a cached resolver over the bundled illustrations.
func Default() Resolver {
	return Cached(NewFSResolver(EmbeddedFS()))
}
