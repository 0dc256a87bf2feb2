package worldgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
)

const tileSize = 16

type texSpec struct {
	base   color.NRGBA
	jitter int
	frames int
}

var texSpecs = map[string]texSpec{
	"default_stone.png":       {base: color.NRGBA{120, 120, 120, 255}, jitter: 18},
	"default_dirt.png":        {base: color.NRGBA{121, 85, 58, 255}, jitter: 20},
	"default_grass.png":       {base: color.NRGBA{65, 152, 56, 255}, jitter: 24},
	"default_sand.png":        {base: color.NRGBA{219, 206, 142, 255}, jitter: 14},
	"default_tree.png":        {base: color.NRGBA{92, 64, 38, 255}, jitter: 16},
	"default_tree_top.png":    {base: color.NRGBA{130, 96, 58, 255}, jitter: 12},
	"default_water.png":       {base: color.NRGBA{39, 66, 161, 160}, jitter: 22, frames: 4},
	"default_glass.png":       {base: color.NRGBA{200, 225, 235, 60}, jitter: 8},
	"default_leaves.png":      {base: color.NRGBA{34, 105, 34, 255}, jitter: 40},
	"default_grass_plant.png": {base: color.NRGBA{80, 160, 60, 255}, jitter: 30},
}

// MediaFiles generates the demo texture pack. Textures are deterministic
// noise over a base color; the water texture is a vertical animation
// strip.
func MediaFiles() map[string][]byte {
	files := make(map[string][]byte, len(texSpecs)+2)
	for name, spec := range texSpecs {
		files[name] = encodeTile(name, spec)
	}
	files["default_grass_side.png"] = grassSideOverlay()
	return files
}

func encodeTile(name string, spec texSpec) []byte {
	frames := spec.frames
	if frames < 1 {
		frames = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize, tileSize*frames))
	rng := rand.New(rand.NewSource(int64(len(name)) * 7919))

	for y := 0; y < tileSize*frames; y++ {
		for x := 0; x < tileSize; x++ {
			d := rng.Intn(2*spec.jitter+1) - spec.jitter
			img.SetNRGBA(x, y, color.NRGBA{
				clamp8(int(spec.base.R) + d),
				clamp8(int(spec.base.G) + d),
				clamp8(int(spec.base.B) + d),
				spec.base.A,
			})
		}
	}

	// Leaves and plants get punched-out holes so discard has work to do.
	if name == "default_leaves.png" || name == "default_grass_plant.png" {
		for y := 0; y < tileSize*frames; y++ {
			for x := 0; x < tileSize; x++ {
				if rng.Intn(4) == 0 {
					img.SetNRGBA(x, y, color.NRGBA{})
				}
			}
		}
	}

	return encodePNG(img)
}

// grassSideOverlay is transparent except for a grass lip on the top rows,
// composited over the dirt base by the texture string machinery.
func grassSideOverlay() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, tileSize, tileSize))
	rng := rand.New(rand.NewSource(4001))

	for x := 0; x < tileSize; x++ {
		depth := 3 + rng.Intn(3)
		for y := 0; y < depth; y++ {
			d := rng.Intn(41) - 20
			img.SetNRGBA(x, y, color.NRGBA{clamp8(65 + d), clamp8(152 + d), clamp8(56 + d), 255})
		}
	}
	return encodePNG(img)
}

func encodePNG(img *image.NRGBA) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory NRGBA cannot fail.
		panic(err)
	}
	return buf.Bytes()
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
