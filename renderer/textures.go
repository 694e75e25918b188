package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/texture"
)

// TextureLoader uploads image files to the GPU. It implements texture.Loader
// and must only be used after the window exists.
type TextureLoader struct {
	loaded map[uint32]rl.Texture2D
}

// NewTextureLoader creates an empty loader.
func NewTextureLoader() *TextureLoader {
	return &TextureLoader{loaded: make(map[uint32]rl.Texture2D)}
}

// Load reads path and uploads it as a texture.
func (l *TextureLoader) Load(path string) (texture.Handle, error) {
	img := rl.LoadImage(path)
	if img == nil || img.Data == nil || img.Width == 0 || img.Height == 0 {
		return texture.Handle{}, fmt.Errorf("decoding %s: unsupported or corrupt image", path)
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return texture.Handle{}, fmt.Errorf("uploading %s: texture creation failed", path)
	}
	l.loaded[tex.ID] = tex

	return texture.Handle{
		ID:       tex.ID,
		Path:     path,
		Width:    int(tex.Width),
		Height:   int(tex.Height),
		HasAlpha: hasAlpha(img.Format),
	}, nil
}

// Texture returns the GPU texture behind a handle.
func (l *TextureLoader) Texture(h texture.Handle) (rl.Texture2D, bool) {
	tex, ok := l.loaded[h.ID]
	return tex, ok
}

// Unload frees every uploaded texture.
func (l *TextureLoader) Unload() {
	for id, tex := range l.loaded {
		rl.UnloadTexture(tex)
		delete(l.loaded, id)
	}
}

func hasAlpha(format rl.PixelFormat) bool {
	switch format {
	case rl.UncompressedGrayAlpha,
		rl.UncompressedR5g5b5a1,
		rl.UncompressedR4g4b4a4,
		rl.UncompressedR8g8b8a8,
		rl.UncompressedR32g32b32a32:
		return true
	}
	return false
}
