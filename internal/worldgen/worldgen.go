// Package worldgen produces a deterministic demo world so the client can
// run without a server: a perlin heightmap with water, beaches, trees and
// grass plants, delivered through the same block pipeline real map data
// would use.
package worldgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"mini-mt/internal/world"
)

// Content IDs, used as param0 values in generated blocks.
const (
	Air uint16 = iota
	Stone
	Dirt
	Grass
	Sand
	Water
	Glass
	Leaves
	Tree
	GrassPlant
)

const (
	baseHeight  = 8
	heightAmp   = 12.0
	waterLevel  = 7
	noiseScale  = 0.02
	plantChance = 0.08
	treeChance  = 0.008
	glassChance = 0.004
)

type Generator struct {
	seed  int64
	noise *perlin.Perlin
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:  seed,
		noise: perlin.NewPerlin(2.0, 2.0, 3, seed),
	}
}

// surfaceHeight returns the terrain height in node coordinates, mapping
// the noise from [-1,1] onto [baseHeight-amp, baseHeight+amp].
func (g *Generator) surfaceHeight(x, z int) int {
	n := g.noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale)
	return baseHeight + int(n*heightAmp)
}

// GenerateBlock fills one 16x16x16 block. The same position always yields
// the same block.
func (g *Generator) GenerateBlock(pos world.BlockPos) *world.MapBlock {
	blk := &world.MapBlock{}
	rng := rand.New(rand.NewSource(g.seed + int64(pos.X)*31 + int64(pos.Y)*17 + int64(pos.Z)*13))

	for z := 0; z < world.BlockSize; z++ {
		for x := 0; x < world.BlockSize; x++ {
			wx := int(pos.X)*world.BlockSize + x
			wz := int(pos.Z)*world.BlockSize + z
			h := g.surfaceHeight(wx, wz)

			for y := 0; y < world.BlockSize; y++ {
				wy := int(pos.Y)*world.BlockSize + y
				idx := world.NodeIndex(x, y, z)

				blk.Param0[idx] = g.nodeAt(wy, h, rng)
				blk.Param1[idx] = lightAt(wy, h)
			}

			g.decorate(blk, rng, x, z, h, int(pos.Y)*world.BlockSize)
		}
	}
	return blk
}

func (g *Generator) nodeAt(wy, h int, rng *rand.Rand) uint16 {
	switch {
	case wy < h-3:
		return Stone
	case wy < h-1:
		return Dirt
	case wy < h:
		if h <= waterLevel+1 {
			return Sand
		}
		return Grass
	case wy <= waterLevel:
		return Water
	default:
		return Air
	}
}

// decorate places plants and trees on top of dry surface columns that lie
// entirely inside this block.
func (g *Generator) decorate(blk *world.MapBlock, rng *rand.Rand, x, z, h, blockBase int) {
	surfaceY := h - blockBase
	if surfaceY < 0 || surfaceY >= world.BlockSize || h <= waterLevel+1 {
		return
	}

	roll := rng.Float64()
	switch {
	case roll < treeChance && x >= 1 && x <= 14 && z >= 1 && z <= 14 && surfaceY+6 < world.BlockSize:
		g.placeTree(blk, x, surfaceY, z)
	case roll < treeChance+glassChance:
		// Scattered glass shards.
		idx := world.NodeIndex(x, surfaceY, z)
		blk.Param0[idx] = Glass
		blk.Param1[idx] = 15
	case roll < treeChance+glassChance+plantChance:
		idx := world.NodeIndex(x, surfaceY, z)
		blk.Param0[idx] = GrassPlant
		blk.Param1[idx] = 15
	}
}

func (g *Generator) placeTree(blk *world.MapBlock, x, y, z int) {
	for dy := 0; dy < 4; dy++ {
		blk.Param0[world.NodeIndex(x, y+dy, z)] = Tree
	}
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			for dy := 3; dy <= 5; dy++ {
				idx := world.NodeIndex(x+dx, y+dy, z+dz)
				if blk.Param0[idx] == Air {
					blk.Param0[idx] = Leaves
					blk.Param1[idx] = 12
				}
			}
		}
	}
}

// lightAt approximates daylight: full above the surface, fading with
// water depth, dim underground.
func lightAt(wy, h int) uint8 {
	switch {
	case wy >= h && wy > waterLevel:
		return 15
	case wy >= h:
		depth := waterLevel - wy
		if light := 14 - 2*depth; light > 2 {
			return uint8(light)
		}
		return 2
	default:
		return 4
	}
}
