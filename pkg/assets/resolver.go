package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// ErrIconNotFound reports a reference that does not map to usable SVG markup.
var ErrIconNotFound = errors.New("assets: icon not found")

// Icon is a resolved, sanitized graphic.
type Icon struct {
	Ref    feature.IconRef
	Markup string
}

// Resolver turns an icon reference into a renderable graphic.
type Resolver interface {
	Resolve(ref feature.IconRef) (Icon, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ref feature.IconRef) (Icon, error)

// Resolve calls f(ref).
func (f ResolverFunc) Resolve(ref feature.IconRef) (Icon, error) {
	return f(ref)
}

// Option configures an FSResolver.
type Option func(*FSResolver)

// WithExtension overrides the extension appended to references that have
// none. Defaults to ".svg".
func WithExtension(ext string) Option {
	return func(r *FSResolver) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		r.extension = trimmed
	}
}

// WithPrefix resolves references relative to a directory inside the FS.
func WithPrefix(dir string) Option {
	return func(r *FSResolver) {
		r.prefix = strings.Trim(strings.TrimSpace(dir), "/")
	}
}

// FSResolver loads SVG files from an fs.FS.
type FSResolver struct {
	files     fs.FS
	prefix    string
	extension string
}

var _ Resolver = (*FSResolver)(nil)

// NewFSResolver constructs a resolver reading from files.
func NewFSResolver(files fs.FS, options ...Option) *FSResolver {
	r := &FSResolver{
		files:     files,
		extension: ".svg",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// NewDirResolver reads icons from a directory on disk.
func NewDirResolver(dir string, options ...Option) *FSResolver {
	return NewFSResolver(os.DirFS(dir), options...)
}

// Resolve reads and sanitizes the referenced SVG.
func (r *FSResolver) Resolve(ref feature.IconRef) (Icon, error) {
	if r == nil || r.files == nil {
		return Icon{}, errors.New("assets: resolver has no filesystem")
	}

	name := r.pathFor(ref)
	if name == "" {
		return Icon{}, fmt.Errorf("%w: empty reference", ErrIconNotFound)
	}
	if !fs.ValidPath(name) {
		return Icon{}, fmt.Errorf("%w: invalid path %q", ErrIconNotFound, name)
	}

	data, err := fs.ReadFile(r.files, name)
	if err != nil {
		return Icon{}, fmt.Errorf("%w: %s: %v", ErrIconNotFound, name, err)
	}

	markup := sanitizeIconMarkup(string(data))
	if !strings.HasPrefix(markup, "<svg") {
		return Icon{}, fmt.Errorf("%w: %s does not contain svg markup", ErrIconNotFound, name)
	}
	return Icon{Ref: ref, Markup: markup}, nil
}

func (r *FSResolver) pathFor(ref feature.IconRef) string {
	name := strings.TrimSpace(string(ref))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return ""
	}
	if path.Ext(name) == "" {
		name += r.extension
	}
	if r.prefix != "" {
		name = path.Join(r.prefix, name)
	}
	return name
}

// Cached memoizes successful resolutions. Failures are not cached so a fixed
// asset is picked up on the next build.
func Cached(next Resolver) Resolver {
	if next == nil {
		return nil
	}
	if _, ok := next.(*cachedResolver); ok {
		return next
	}
	return &cachedResolver{next: next, icons: make(map[feature.IconRef]Icon)}
}

type cachedResolver struct {
	mu    sync.RWMutex
	next  Resolver
	icons map[feature.IconRef]Icon
}

func (c *cachedResolver) Resolve(ref feature.IconRef) (Icon, error) {
	c.mu.RLock()
	icon, ok := c.icons[ref]
	c.mu.RUnlock()
	if ok {
		return icon, nil
	}

	icon, err := c.next.Resolve(ref)
	if err != nil {
		return Icon{}, err
	}

	c.mu.Lock()
	c.icons[ref] = icon
	c.mu.Unlock()
	return icon, nil
}
