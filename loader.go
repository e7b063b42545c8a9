package featuregrid

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// LoadTable reads a JSON or YAML features document from fsys.
func LoadTable(fsys fs.FS, path string) (Table, error) {
	return feature.LoadFS(fsys, path)
}

// LoadTableFile reads a features document from disk.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("featuregrid: read %s: %w", path, err)
	}
	return feature.Load(data, filepath.Base(path))
}
