package worldgen

import "mini-mt/internal/world"

func cubeDef(name string, textures [6]string) *world.NodeDef {
	def := &world.NodeDef{
		Name:   name,
		Draw:   world.DrawCube,
		Alpha:  world.AlphaOpaque,
		Param1: world.Param1Light,
	}
	for i, tex := range textures {
		def.Tiles[i] = world.TileDef{Texture: tex, BackfaceCull: true}
	}
	return def
}

func uniformCubeDef(name, texture string) *world.NodeDef {
	return cubeDef(name, [6]string{texture, texture, texture, texture, texture, texture})
}

// Defs returns the demo node table, indexed by content ID. Tile order is
// +Y, -Y, +X, -X, +Z, -Z.
func Defs() map[uint16]*world.NodeDef {
	defs := map[uint16]*world.NodeDef{
		Air:   {Name: "air", Draw: world.DrawNone},
		Stone: uniformCubeDef("stone", "default_stone.png"),
		Dirt:  uniformCubeDef("dirt", "default_dirt.png"),
		Sand:  uniformCubeDef("sand", "default_sand.png"),
		Tree: cubeDef("tree", [6]string{
			"default_tree_top.png", "default_tree_top.png",
			"default_tree.png", "default_tree.png",
			"default_tree.png", "default_tree.png",
		}),
	}

	// Grass sides composite the dirt base under a grass overlay.
	grass := cubeDef("grass", [6]string{
		"default_grass.png", "default_dirt.png",
		"default_dirt.png^default_grass_side.png",
		"default_dirt.png^default_grass_side.png",
		"default_dirt.png^default_grass_side.png",
		"default_dirt.png^default_grass_side.png",
	})
	defs[Grass] = grass

	water := &world.NodeDef{
		Name:   "water",
		Draw:   world.DrawLiquid,
		Alpha:  world.AlphaBlend,
		Param1: world.Param1Light,
	}
	for i := range water.Tiles {
		water.Tiles[i] = world.TileDef{Texture: "default_water.png", BackfaceCull: true, AnimFrames: 4}
	}
	defs[Water] = water

	glass := &world.NodeDef{
		Name:   "glass",
		Draw:   world.DrawGlassLike,
		Alpha:  world.AlphaOpaque,
		Param1: world.Param1Light,
	}
	for i := range glass.Tiles {
		glass.Tiles[i] = world.TileDef{Texture: "default_glass.png"}
	}
	defs[Glass] = glass

	leaves := &world.NodeDef{
		Name:   "leaves",
		Draw:   world.DrawAllFacesOpt,
		Alpha:  world.AlphaOpaque,
		Param1: world.Param1Light,
	}
	for i := range leaves.Tiles {
		leaves.Tiles[i] = world.TileDef{Texture: "default_leaves.png"}
		leaves.SpecialTiles[i] = world.TileDef{Texture: "default_leaves_simple.png", BackfaceCull: true}
	}
	defs[Leaves] = leaves

	plant := &world.NodeDef{
		Name:   "grass_plant",
		Draw:   world.DrawPlant,
		Alpha:  world.AlphaOpaque,
		Param1: world.Param1Light,
	}
	for i := range plant.Tiles {
		plant.Tiles[i] = world.TileDef{Texture: "default_grass_plant.png"}
	}
	defs[GrassPlant] = plant

	return defs
}
