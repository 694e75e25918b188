// Package texture resolves an optional surface texture for each body by file name.
//
// Resolution happens once at startup. A missing file is an expected outcome and
// yields an empty Ref; callers fall back to flat-color rendering.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extensions are probed in this order; the first one that loads wins.
var Extensions = []string{".jpg", ".png"}

// ErrNotFound is returned by loaders for a path that does not exist.
var ErrNotFound = errors.New("texture not found")

// Handle describes a loaded texture.
type Handle struct {
	ID       uint32 // backend texture id (0 for headless loaders)
	Path     string
	Width    int
	Height   int
	HasAlpha bool
}

// Ref is an optional Handle.
type Ref struct {
	handle Handle
	ok     bool
}

// Some wraps a loaded handle.
func Some(h Handle) Ref { return Ref{handle: h, ok: true} }

// None is the empty Ref.
func None() Ref { return Ref{} }

// Get returns the handle and whether one is present.
func (r Ref) Get() (Handle, bool) { return r.handle, r.ok }

// Valid reports whether a handle is present.
func (r Ref) Valid() bool { return r.ok }

// Loader turns a file path into a texture handle.
type Loader interface {
	Load(path string) (Handle, error)
}

// Resolver probes a directory for "<name>.jpg" then "<name>.png".
type Resolver struct {
	dir    string
	loader Loader
	log    *slog.Logger
}

// NewResolver creates a resolver rooted at dir. A nil logger uses slog.Default().
func NewResolver(dir string, loader Loader, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	if loader == nil {
		loader = FileLoader{}
	}
	return &Resolver{dir: dir, loader: loader, log: log}
}

// Resolve returns the texture for a body name, or None. It never fails.
func (r *Resolver) Resolve(name string) Ref {
	base := strings.ToLower(strings.TrimSpace(name))
	if base == "" {
		return None()
	}
	for _, ext := range Extensions {
		path := filepath.Join(r.dir, base+ext)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			r.log.Info("texture not found", "path", path)
			continue
		}
		h, err := r.loader.Load(path)
		if err != nil {
			r.log.Warn("texture failed to load", "path", path, "error", err)
			continue
		}
		r.log.Info("texture loaded", "body", name, "path", path, "width", h.Width, "height", h.Height)
		return Some(h)
	}
	return None()
}

// ResolveAll resolves every name in order.
func (r *Resolver) ResolveAll(names []string) []Ref {
	refs := make([]Ref, len(names))
	for i, n := range names {
		refs[i] = r.Resolve(n)
	}
	return refs
}

// FileLoader reads image headers without a graphics context.
// Used by headless tools and tests.
type FileLoader struct{}

// Load decodes the image header at path.
func (FileLoader) Load(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Handle{}, ErrNotFound
		}
		return Handle{}, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Handle{}, fmt.Errorf("decoding texture header: %w", err)
	}
	return Handle{
		Path:     path,
		Width:    cfg.Width,
		Height:   cfg.Height,
		HasAlpha: hasAlpha(cfg),
	}, nil
}

// hasAlpha reports whether the color model can carry transparency.
func hasAlpha(cfg image.Config) bool {
	if cfg.ColorModel == nil {
		return false
	}
	// Opaque models map a transparent pixel to alpha 0xffff.
	_, _, _, a := cfg.ColorModel.Convert(transparent{}).RGBA()
	return a != 0xffff
}

type transparent struct{}

func (transparent) RGBA() (r, g, b, a uint32) { return 0, 0, 0, 0 }
