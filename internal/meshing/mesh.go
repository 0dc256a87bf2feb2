package meshing

import (
	"mini-mt/internal/config"
	"mini-mt/internal/world"
)

// BuildMesh generates the triangle lists for one mapblock. Vertices are
// block-local; the render model's transform places them in the world.
// nbors holds the six face-neighbor blocks in world.FaceDirs order; a nil
// neighbor suppresses the faces looking into it so seams are never drawn
// against unknown data.
func BuildMesh(info *Info, cfg config.Settings, blk *world.MapBlock, nbors [6]*world.MapBlock, out *MeshData) {
	for idx := 0; idx < world.NodeCount; idx++ {
		content := blk.Param0[idx]
		def := info.Nodes[content]
		if def == nil {
			continue
		}

		draw := def.Draw
		tiles := &def.Tiles

		switch draw {
		case world.DrawNone:
			continue
		case world.DrawAllFacesOpt:
			switch cfg.Leaves {
			case config.LeavesOpaque:
				draw = world.DrawCube
			case config.LeavesSimple:
				tiles = &def.SpecialTiles
				draw = world.DrawGlassLike
			default:
				draw = world.DrawAllFaces
			}
		}

		light := float32(1.0)
		if def.Param1 == world.Param1Light {
			light = float32(blk.Param1[idx]) / 15.0
		}

		verts := &out.Verts
		if def.Alpha == world.AlphaBlend && !(draw == world.DrawLiquid && cfg.OpaqueLiquids) {
			verts = &out.BlendVerts
		}

		x, y, z := world.NodeXYZ(idx)

		if draw == world.DrawPlant {
			emitPlant(verts, info, &tiles[0], x, y, z, light)
			continue
		}

		for f := 0; f < 6; f++ {
			if draw == world.DrawCube || draw == world.DrawLiquid {
				if cullFace(info, draw, content, blk, nbors, f, x, y, z) {
					continue
				}
			}

			tile := &tiles[f]
			uv := &info.Textures[tile.AtlasSlot].CubeTexCoords[f]
			emitFace(verts, &CubeFaces[f], uv, x, y, z, light, tile.BackfaceCull)
		}
	}
}

// cullFace decides whether the face f of a cube or liquid node is hidden by
// its axis-aligned neighbor node. A face looking into a missing neighbor
// block is always culled.
func cullFace(info *Info, draw world.DrawType, content uint16, blk *world.MapBlock, nbors [6]*world.MapBlock, f, x, y, z int) bool {
	npos := [3]int{x, y, z}
	axis := faceAxis[f]
	npos[axis] += int(world.FaceDirs[f][axis])

	nblk := blk
	if npos[axis] < 0 || npos[axis] >= world.BlockSize {
		nblk = nbors[f]
		if nblk == nil {
			return true
		}
		npos[axis] = (npos[axis] + world.BlockSize) % world.BlockSize
	}

	ncontent := nblk.Param0[world.NodeIndex(npos[0], npos[1], npos[2])]
	ndef := info.Nodes[ncontent]
	if ndef == nil {
		return false
	}
	switch draw {
	case world.DrawCube:
		return ndef.Draw == world.DrawCube
	case world.DrawLiquid:
		return ndef.Draw == world.DrawCube || ncontent == content
	}
	return false
}

// emitFace appends the six template vertices of one face, offset to the
// node position. When the tile is not back-face culled, the same vertices
// are appended again in reverse winding so the face is visible from behind.
func emitFace(verts *[]float32, face *[6]faceVert, uv *[6][2]float32, x, y, z int, light float32, backfaceCull bool) {
	for i := 0; i < 6; i++ {
		appendVert(verts, &face[i], &uv[i], x, y, z, light)
	}
	if !backfaceCull {
		for i := 5; i >= 0; i-- {
			appendVert(verts, &face[i], &uv[i], x, y, z, light)
		}
	}
}

// emitPlant appends two crossed quads built from the +Z face template
// rotated 45 and 135 degrees about the vertical axis, spanning the node
// cell diagonally. Plants ignore neighbor occlusion entirely.
func emitPlant(verts *[]float32, info *Info, tile *world.TileDef, x, y, z int, light float32) {
	const face = 4 // +Z template carries the upright quad shape
	uv := &info.Textures[tile.AtlasSlot].CubeTexCoords[face]

	for _, flip := range [2]float32{1, -1} {
		emitPlantQuad(verts, uv, x, y, z, light, flip, false)
		if !tile.BackfaceCull {
			emitPlantQuad(verts, uv, x, y, z, light, flip, true)
		}
	}
}

func emitPlantQuad(verts *[]float32, uv *[6][2]float32, x, y, z int, light, flip float32, reverse bool) {
	for n := 0; n < 6; n++ {
		i := n
		if reverse {
			i = 5 - n
		}
		v := &CubeFaces[4][i]
		// Map the in-plane x extent onto the cell diagonal.
		px := v.Pos[0]
		*verts = append(*verts,
			float32(x)+px,
			float32(y)+v.Pos[1],
			float32(z)+px*flip,
			uv[i][0], uv[i][1],
			light,
		)
	}
}

func appendVert(verts *[]float32, v *faceVert, uv *[2]float32, x, y, z int, light float32) {
	*verts = append(*verts,
		float32(x)+v.Pos[0],
		float32(y)+v.Pos[1],
		float32(z)+v.Pos[2],
		uv[0], uv[1],
		light,
	)
}
