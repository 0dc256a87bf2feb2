// Package atlas builds the one-shot texture atlas at map construction
// time: every distinct texture string across the node table is resolved,
// packed into a single canvas and given a per-face UV quad. Node tiles are
// mutated in place to record their atlas slot.
package atlas

import (
	"image"
	"image/draw"
	"log"

	"github.com/disintegration/imaging"

	"mini-mt/internal/media"
	"mini-mt/internal/meshing"
	"mini-mt/internal/world"
)

type allocation struct {
	img  *image.NRGBA
	rect image.Rectangle
}

// Build packs one texture per distinct texture string. The canvas starts
// at 1x1 and doubles until every allocation succeeds, so packing never
// fails for mutually fitting textures. Tiles sharing a texture string
// share a slot.
func Build(reg *world.NodeRegistry, mgr *media.Manager) (*image.NRGBA, []meshing.AtlasSlice) {
	p := newPacker(1, 1)
	idMap := make(map[string]int)
	var allocs []allocation

	reg.EachTile(func(tile *world.TileDef) {
		if slot, ok := idMap[tile.Texture]; ok {
			tile.AtlasSlot = slot
			return
		}

		img := mgr.TextureString(tile.Texture)
		img = cropAnimation(tile, img)

		b := img.Bounds()
		var rect image.Rectangle
		for {
			var ok bool
			rect, ok = p.alloc(b.Dx(), b.Dy())
			if ok {
				break
			}
			p.grow()
		}

		slot := len(allocs)
		allocs = append(allocs, allocation{img: img, rect: rect})
		idMap[tile.Texture] = slot
		tile.AtlasSlot = slot
	})

	w, h := p.size()
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	slices := make([]meshing.AtlasSlice, len(allocs))

	for i, a := range allocs {
		draw.Draw(canvas, a.rect, a.img, a.img.Bounds().Min, draw.Src)

		x0 := float32(a.rect.Min.X) / float32(w)
		x1 := float32(a.rect.Max.X) / float32(w)
		y0 := float32(a.rect.Min.Y) / float32(h)
		y1 := float32(a.rect.Max.Y) / float32(h)

		for f := range meshing.CubeFaces {
			for v := range meshing.CubeFaces[f] {
				base := meshing.CubeFaces[f][v].UV
				slices[i].CubeTexCoords[f][v] = [2]float32{
					lerp(x0, x1, base[0]),
					lerp(y0, y1, base[1]),
				}
			}
		}
	}

	log.Printf("atlas: packed %d textures into %dx%d", len(allocs), w, h)
	return canvas, slices
}

// cropAnimation keeps the first frame of a vertically stacked frame
// animation. Malformed frame counts log a diagnostic and leave the image
// untouched.
func cropAnimation(tile *world.TileDef, img *image.NRGBA) *image.NRGBA {
	if tile.AnimFrames <= 1 {
		return img
	}
	frameH := img.Bounds().Dy() / tile.AnimFrames
	if frameH < 1 {
		log.Printf("atlas: %s: %d frames in a %d px tall image", tile.Texture, tile.AnimFrames, img.Bounds().Dy())
		return img
	}
	return imaging.Crop(img, image.Rect(0, 0, img.Bounds().Dx(), frameH))
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
