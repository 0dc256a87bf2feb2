package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, c color.NRGBA, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestServerPackOverridesBase(t *testing.T) {
	m := NewManager("testdata-none")
	m.AddServerMedia(map[string][]byte{"a.png": {1}})
	m.AddServerMedia(map[string][]byte{"a.png": {2}})

	data, ok := m.Get("a.png")
	if !ok || data[0] != 2 {
		t.Fatalf("got %v/%v, want latest server bytes", data, ok)
	}
}

func TestTexturePlaceholderOnMissing(t *testing.T) {
	m := NewManager("testdata-none")
	img := m.Texture("does-not-exist.png")
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("placeholder bounds %v, want 1x1", img.Bounds())
	}
	if img.Pix[3] != 0xff {
		t.Fatal("placeholder must be opaque")
	}
}

func TestTexturePlaceholderOnUndecodable(t *testing.T) {
	m := NewManager("testdata-none")
	m.AddServerMedia(map[string][]byte{"bad.png": {0xde, 0xad, 0xbe, 0xef}})
	img := m.Texture("bad.png")
	if img.Bounds().Dx() != 1 {
		t.Fatalf("want 1x1 placeholder, got %v", img.Bounds())
	}
}

func TestTextureStringOverlay(t *testing.T) {
	m := NewManager("testdata-none")
	m.AddServerMedia(map[string][]byte{
		"base.png": encodePNG(t, color.NRGBA{255, 0, 0, 255}, 2, 2),
		"over.png": encodePNG(t, color.NRGBA{0, 255, 0, 255}, 2, 2),
	})

	img := m.TextureString("base.png^over.png")
	if img.Bounds().Dx() != 2 {
		t.Fatalf("composited bounds %v, want 2x2", img.Bounds())
	}
	// Opaque overlay fully covers the base.
	if img.Pix[1] != 255 || img.Pix[0] != 0 {
		t.Fatalf("pixel %v, want overlay green", img.Pix[:4])
	}
}

func TestTextureStringUnknownModifier(t *testing.T) {
	m := NewManager("testdata-none")
	m.AddServerMedia(map[string][]byte{
		"base.png": encodePNG(t, color.NRGBA{0, 0, 255, 255}, 2, 2),
	})

	// Modifier layer is skipped, base survives.
	img := m.TextureString("base.png^[brighten")
	if img.Bounds().Dx() != 2 {
		t.Fatalf("bounds %v, want base to survive modifier", img.Bounds())
	}
	if img.Pix[2] != 255 {
		t.Fatalf("pixel %v, want base blue", img.Pix[:4])
	}
}

func TestTextureStringAllModifiers(t *testing.T) {
	m := NewManager("testdata-none")
	img := m.TextureString("[combine:16x16")
	if img.Bounds().Dx() != 1 {
		t.Fatalf("want placeholder for unresolvable string, got %v", img.Bounds())
	}
}
