package world

// DrawType classifies how a node's voxel is turned into geometry.
type DrawType uint8

const (
	DrawNone DrawType = iota
	DrawCube
	DrawAllFaces
	DrawAllFacesOpt // resolved to Cube/GlassLike/AllFaces by the leaves setting
	DrawLiquid
	DrawGlassLike
	DrawPlant
)

// Alpha selects the vertex partition a node's faces land in.
type Alpha uint8

const (
	AlphaOpaque Alpha = iota
	AlphaBlend
)

// Param1Type says how a node's param1 byte is interpreted.
type Param1Type uint8

const (
	Param1None Param1Type = iota
	Param1Light
)

// TileDef is one face's texture assignment. AtlasSlot is filled in by the
// atlas builder; it indexes the atlas slice table.
type TileDef struct {
	Texture      string
	BackfaceCull bool
	// AnimFrames > 1 marks a vertically stacked frame animation; the atlas
	// keeps only the first frame.
	AnimFrames int
	AtlasSlot  int
}

// NodeDef describes one content ID. The table is loaded once, before any
// block arrives, and is read-only afterwards except for the atlas builder
// recording slot indices into the tiles.
type NodeDef struct {
	Name         string
	Draw         DrawType
	Tiles        [6]TileDef
	OverlayTiles [6]TileDef
	SpecialTiles [6]TileDef
	Alpha        Alpha
	Param1       Param1Type
}

// MaxContent is the largest valid content ID.
const MaxContent = 1<<16 - 1

// NodeRegistry resolves content IDs to node definitions. Unknown IDs
// resolve to nil and are skipped by the mesher.
type NodeRegistry struct {
	defs []*NodeDef
}

func NewNodeRegistry(defs map[uint16]*NodeDef) *NodeRegistry {
	r := &NodeRegistry{defs: make([]*NodeDef, MaxContent+1)}
	for id, def := range defs {
		r.defs[id] = def
	}
	return r
}

// Get returns the definition for a content ID, or nil.
func (r *NodeRegistry) Get(id uint16) *NodeDef {
	return r.defs[id]
}

// Defs exposes the full ID-indexed table for the mesh workers.
func (r *NodeRegistry) Defs() []*NodeDef {
	return r.defs
}

// EachTile visits every tile of every definition, in a stable order, so the
// atlas builder can assign slots in place.
func (r *NodeRegistry) EachTile(fn func(*TileDef)) {
	for _, def := range r.defs {
		if def == nil {
			continue
		}
		for i := range def.Tiles {
			fn(&def.Tiles[i])
		}
		for i := range def.OverlayTiles {
			fn(&def.OverlayTiles[i])
		}
		for i := range def.SpecialTiles {
			fn(&def.SpecialTiles[i])
		}
	}
}
