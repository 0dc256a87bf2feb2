// Package game wires the client session together: node definitions and
// media arrive first, the atlas and map renderer are built once media is
// final, and map blocks stream in afterwards.
package game

import (
	"errors"
	"log"

	"mini-mt/internal/atlas"
	"mini-mt/internal/config"
	"mini-mt/internal/graphics"
	"mini-mt/internal/graphics/renderables/blocks"
	"mini-mt/internal/media"
	"mini-mt/internal/meshing"
	"mini-mt/internal/proto"
	"mini-mt/internal/world"
)

var errNotReady = errors.New("game: media not finalized")

type pendingBlock struct {
	pos world.BlockPos
	blk *world.MapBlock
}

// Session owns the lifetime of one connection's render state. Delivery
// methods mirror the server handshake order: DeliverNodeDefs, then
// DeliverMedia batches ending with final=true, then blocks.
type Session struct {
	cfg   config.Settings
	media *media.Manager
	defs  map[uint16]*world.NodeDef

	mapRender *blocks.Map

	// Blocks that arrived before media was finalized.
	pending []pendingBlock
}

func NewSession(cfg config.Settings, mediaDir string) *Session {
	return &Session{
		cfg:   cfg,
		media: media.NewManager(mediaDir),
	}
}

// DeliverNodeDefs installs the node table. Must precede the final media
// batch.
func (s *Session) DeliverNodeDefs(defs map[uint16]*world.NodeDef) {
	s.defs = defs
}

// DeliverMedia adds a batch of texture files. The final batch triggers
// the one-shot atlas build and brings up the map renderer, so it must run
// on the render thread.
func (s *Session) DeliverMedia(files map[string][]byte, final bool) error {
	s.media.AddServerMedia(files)
	if !final {
		return nil
	}
	if s.defs == nil {
		return errors.New("game: media finalized before node definitions")
	}

	reg := world.NewNodeRegistry(s.defs)
	img, slices := atlas.Build(reg, s.media)
	info := &meshing.Info{Nodes: reg.Defs(), Textures: slices}

	m, err := blocks.NewMap(info, s.cfg, img)
	if err != nil {
		return err
	}
	s.mapRender = m

	for _, p := range s.pending {
		s.mapRender.AddBlock(p.pos, p.blk)
	}
	s.pending = nil
	return nil
}

// Ready reports whether the map renderer is up.
func (s *Session) Ready() bool {
	return s.mapRender != nil
}

// DeliverBlock feeds one decoded map block into the pipeline. Blocks
// arriving before the renderer exists are buffered.
func (s *Session) DeliverBlock(pos world.BlockPos, blk *world.MapBlock) {
	if s.mapRender == nil {
		s.pending = append(s.pending, pendingBlock{pos: pos, blk: blk})
		return
	}
	s.mapRender.AddBlock(pos, blk)
}

// DeliverRawBlock decodes a wire-format block payload and feeds it in.
func (s *Session) DeliverRawBlock(pos world.BlockPos, payload []byte) error {
	blk, err := proto.DecodeBlock(payload)
	if err != nil {
		return err
	}
	s.DeliverBlock(pos, blk)
	return nil
}

// Update advances the map pipeline. Call once per frame, before Render.
func (s *Session) Update() {
	if s.mapRender != nil {
		s.mapRender.Update()
	}
}

// Render draws the frame. A lost surface is survivable: the frame is
// dropped and the caller's resize handling reconfigures the surface. Any
// other error is fatal to the session.
func (s *Session) Render(cam *graphics.Camera) error {
	if s.mapRender == nil {
		return errNotReady
	}

	err := s.mapRender.Render(cam.View(), cam.Projection(), cam.Position)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, graphics.ErrSurfaceLost):
		log.Printf("surface lost, skipping frame")
		return nil
	default:
		return err
	}
}

// Counts exposes the map renderer's per-frame statistics.
func (s *Session) Counts() blocks.Counts {
	if s.mapRender == nil {
		return blocks.Counts{}
	}
	return s.mapRender.Counts()
}

// Cleanup stops the mesh workers and frees GL resources.
func (s *Session) Cleanup() {
	if s.mapRender != nil {
		s.mapRender.Dispose()
		s.mapRender = nil
	}
	s.pending = nil
}
