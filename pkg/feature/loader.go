package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a features document has no content.
var ErrEmptyDocument = errors.New("feature: document is empty")

type documentFile struct {
	Features []Descriptor `json:"features" yaml:"features"`
}

// LoadFS reads a JSON or YAML features document from fsys.
func LoadFS(fsys fs.FS, path string) (Table, error) {
	if fsys == nil {
		return Table{}, errors.New("feature: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Table{}, fmt.Errorf("feature: read %s: %w", path, err)
	}
	return Load(data, path)
}

// Load parses a features document. JSON is tried first, then YAML, so the
// same file layout works for both formats:
//
//	features:
//	  - title: Angular Expertise
//	    icon: undraw_docusaurus_tree.svg
//	    description: We leverage <b>Angular</b>...
func Load(data []byte, source string) (Table, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Table{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	doc, err := parseDocument(data, source)
	if err != nil {
		return Table{}, err
	}

	descs := make([]Descriptor, 0, len(doc.Features))
	for _, raw := range doc.Features {
		descs = append(descs, Descriptor{
			Title:       strings.TrimSpace(raw.Title),
			Icon:        IconRef(strings.TrimSpace(string(raw.Icon))),
			Description: Markup(strings.TrimSpace(string(raw.Description))),
		})
	}
	return NewTable(descs...), nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("feature: parse %s: invalid JSON or YAML", source)
}
