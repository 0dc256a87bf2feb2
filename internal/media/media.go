// Package media is the raw texture byte cache plus the texture-string
// resolver. Failures never abort: anything that cannot be resolved or
// decoded comes back as a 1x1 random-colored placeholder so broken content
// is visible instead of fatal.
package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// Manager holds layered media packs: the local base pack first, then the
// server pack. Later packs win on name collisions.
type Manager struct {
	packs  []map[string][]byte
	srvIdx int
}

// NewManager builds a manager with an optional base pack loaded from dir
// (skipped when the directory is absent) and an empty server pack.
func NewManager(dir string) *Manager {
	base := make(map[string][]byte)
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				log.Printf("media: skipping %s: %v", e.Name(), err)
				continue
			}
			base[e.Name()] = data
		}
	}
	return &Manager{
		packs:  []map[string][]byte{base, make(map[string][]byte)},
		srvIdx: 1,
	}
}

// AddServerMedia merges a batch of server-pushed files into the server pack.
func (m *Manager) AddServerMedia(files map[string][]byte) {
	for name, data := range files {
		m.packs[m.srvIdx][name] = data
	}
}

// Get returns the raw bytes for a media name, searching packs in reverse so
// server media overrides the base pack.
func (m *Manager) Get(name string) ([]byte, bool) {
	for i := len(m.packs) - 1; i >= 0; i-- {
		if data, ok := m.packs[i][name]; ok {
			return data, true
		}
	}
	return nil, false
}

// RandImage returns the 1x1 random-colored placeholder used for anything
// that fails to resolve.
func RandImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = uint8(rand.Intn(256))
	img.Pix[1] = uint8(rand.Intn(256))
	img.Pix[2] = uint8(rand.Intn(256))
	img.Pix[3] = 0xff
	return img
}

// Texture decodes a single named texture, flipped vertically for GL.
// PNG/JPEG are tried first, BMP as the fallback format.
func (m *Manager) Texture(name string) *image.NRGBA {
	data, ok := m.Get(name)
	if !ok {
		log.Printf("media: unknown texture: %s", name)
		return RandImage()
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		img, err = bmp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		log.Printf("media: while loading %s: %v", name, err)
		return RandImage()
	}
	return imaging.FlipV(img)
}

// TextureString resolves layered-overlay syntax: layers separated by '^',
// later layers alpha-composited over earlier ones. An empty layer resolves
// to no_texture.png; '[' modifiers are not supported and only log.
func (m *Manager) TextureString(s string) *image.NRGBA {
	var base *image.NRGBA
	for _, layer := range strings.Split(s, "^") {
		var overlay *image.NRGBA
		switch {
		case layer == "":
			overlay = m.Texture("no_texture.png")
		case strings.HasPrefix(layer, "["):
			log.Printf("media: unknown texture modifier: %s", layer)
			continue
		default:
			overlay = m.Texture(layer)
		}
		if base == nil {
			base = overlay
		} else {
			base = imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0)
		}
	}
	if base == nil {
		return RandImage()
	}
	return base
}
