package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestResolvePNGFallback(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "earth.png"), 4, 2)

	r := NewResolver(dir, FileLoader{}, quietLogger())
	ref := r.Resolve("Earth")
	h, ok := ref.Get()
	if !ok {
		t.Fatal("expected earth.png to resolve")
	}
	if h.Path != filepath.Join(dir, "earth.png") {
		t.Errorf("unexpected path %q", h.Path)
	}
	if h.Width != 4 || h.Height != 2 {
		t.Errorf("expected 4x2, got %dx%d", h.Width, h.Height)
	}
	if !h.HasAlpha {
		t.Error("expected NRGBA png to report alpha")
	}
}

func TestResolveMissing(t *testing.T) {
	r := NewResolver(t.TempDir(), FileLoader{}, quietLogger())
	if ref := r.Resolve("earth"); ref.Valid() {
		t.Error("expected NotFound with no files present")
	}
}

func TestResolveNeverFails(t *testing.T) {
	dir := t.TempDir()
	// A directory named like a texture and an undecodable file.
	if err := os.Mkdir(filepath.Join(dir, "mars.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "venus.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		dir, name string
	}{
		{filepath.Join(dir, "does", "not", "exist"), "earth"},
		{dir, "mars"},
		{dir, "venus"},
		{dir, ""},
		{dir, "../../etc/passwd"},
	}
	for _, tc := range cases {
		r := NewResolver(tc.dir, nil, quietLogger())
		if ref := r.Resolve(tc.name); ref.Valid() {
			t.Errorf("Resolve(%q) in %s: expected NotFound", tc.name, tc.dir)
		}
	}
}

type stubLoader struct {
	calls []string
	fail  map[string]bool
}

func (s *stubLoader) Load(path string) (Handle, error) {
	s.calls = append(s.calls, filepath.Base(path))
	if s.fail[filepath.Base(path)] {
		return Handle{}, errors.New("corrupt")
	}
	return Handle{ID: uint32(len(s.calls)), Path: path}, nil
}

func TestResolvePrefersJPG(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"saturn.jpg", "saturn.png"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	loader := &stubLoader{}
	h, ok := NewResolver(dir, loader, quietLogger()).Resolve("Saturn").Get()
	if !ok || filepath.Base(h.Path) != "saturn.jpg" {
		t.Fatalf("expected saturn.jpg, got %+v ok=%v", h, ok)
	}
	if len(loader.calls) != 1 {
		t.Errorf("expected a single load, got %v", loader.calls)
	}

	// A corrupt jpg falls through to the png.
	loader = &stubLoader{fail: map[string]bool{"saturn.jpg": true}}
	h, ok = NewResolver(dir, loader, quietLogger()).Resolve("saturn").Get()
	if !ok || filepath.Base(h.Path) != "saturn.png" {
		t.Fatalf("expected fallback to saturn.png, got %+v ok=%v", h, ok)
	}
}

func TestResolveAllIsPerBody(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "mars.png"), 1, 1)

	refs := NewResolver(dir, FileLoader{}, quietLogger()).ResolveAll([]string{"Earth", "Mars", "Venus"})
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	if refs[0].Valid() || !refs[1].Valid() || refs[2].Valid() {
		t.Errorf("expected only Mars resolved, got %v %v %v", refs[0].Valid(), refs[1].Valid(), refs[2].Valid())
	}
}
