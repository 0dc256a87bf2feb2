package worldgen

import (
	"bytes"
	"image/png"
	"testing"

	"mini-mt/internal/world"
)

func TestGenerateBlockDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)
	pos := world.BlockPos{X: 1, Y: 0, Z: -2}

	if *a.GenerateBlock(pos) != *b.GenerateBlock(pos) {
		t.Fatal("same seed and position produced different blocks")
	}
}

func TestGenerateBlockTerrainLayers(t *testing.T) {
	g := NewGenerator(42)

	// Deep underground is solid stone.
	deep := g.GenerateBlock(world.BlockPos{X: 0, Y: -4, Z: 0})
	for i := 0; i < world.NodeCount; i++ {
		if deep.Param0[i] != Stone {
			t.Fatalf("node %d at y=-64: content %d, want stone", i, deep.Param0[i])
		}
	}

	// High in the sky is all air at full light.
	sky := g.GenerateBlock(world.BlockPos{X: 0, Y: 4, Z: 0})
	for i := 0; i < world.NodeCount; i++ {
		if sky.Param0[i] != Air {
			t.Fatalf("node %d at y=64: content %d, want air", i, sky.Param0[i])
		}
		if sky.Param1[i] != 15 {
			t.Fatalf("node %d at y=64: light %d, want 15", i, sky.Param1[i])
		}
	}
}

func TestDefsCoverAllGeneratedContent(t *testing.T) {
	defs := Defs()
	g := NewGenerator(7)

	for _, pos := range []world.BlockPos{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: -2, Y: 0, Z: 3}, {X: 0, Y: -1, Z: 0}} {
		blk := g.GenerateBlock(pos)
		for i := 0; i < world.NodeCount; i++ {
			if _, ok := defs[blk.Param0[i]]; !ok {
				t.Fatalf("generated content %d has no node definition", blk.Param0[i])
			}
		}
	}
}

func TestGeneratorPlacesEveryDecoration(t *testing.T) {
	g := NewGenerator(42)
	seen := map[uint16]bool{}

	for z := int16(-5); z <= 5; z++ {
		for x := int16(-5); x <= 5; x++ {
			for _, y := range []int16{0, 1} {
				blk := g.GenerateBlock(world.BlockPos{X: x, Y: y, Z: z})
				for i := 0; i < world.NodeCount; i++ {
					seen[blk.Param0[i]] = true
				}
			}
		}
	}

	for _, content := range []uint16{Glass, Tree, Leaves, GrassPlant} {
		if !seen[content] {
			t.Fatalf("content %d never placed in an 11x11 block sample", content)
		}
	}
}

func TestMediaFilesDecode(t *testing.T) {
	files := MediaFiles()
	for _, def := range Defs() {
		for _, tile := range def.Tiles {
			if tile.Texture == "" {
				continue
			}
			// Texture strings may composite several files with '^'.
			for _, name := range bytes.Split([]byte(tile.Texture), []byte("^")) {
				data, ok := files[string(name)]
				if !ok {
					t.Fatalf("tile texture %s not generated", name)
				}
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					t.Fatalf("decode %s: %v", name, err)
				}
			}
		}
	}
}

func TestWaterTextureIsAnimationStrip(t *testing.T) {
	files := MediaFiles()
	img, err := png.Decode(bytes.NewReader(files["default_water.png"]))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dy() != 4*img.Bounds().Dx() {
		t.Fatalf("water strip %dx%d, want 4 stacked frames", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
