package featuregrid

import (
	"io/fs"

	"github.com/goliatone/go-featuregrid/pkg/assets"
)

// EmbeddedIcons exposes the bundled feature illustrations so Go applications
// can serve them or pass them to WithIconsFS.
//
// Typical mount:
//
//	mux.Handle("/img/",
//	  http.StripPrefix("/img/",
//	    http.FileServerFS(featuregrid.EmbeddedIcons()),
//	  ),
//	)
func EmbeddedIcons() fs.FS {
	return assets.EmbeddedFS()
}
