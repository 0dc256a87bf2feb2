// Package blocks renders the map: it owns the block store, the mesh
// worker pool and the model table, and draws the opaque and blended
// partitions each frame.
package blocks

import (
	"image"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-mt/internal/config"
	"mini-mt/internal/graphics"
	"mini-mt/internal/meshing"
	"mini-mt/internal/profiling"
	"mini-mt/internal/world"
)

const shadersDir = "assets/shaders"

var (
	mapVertShader = filepath.Join(shadersDir, "map.vert")
	mapFragShader = filepath.Join(shadersDir, "map.frag")
)

const meshQueueSize = 256

// Counts is a per-frame snapshot for the window title and debug overlay.
type Counts struct {
	Blocks      int
	Deferred    int
	Models      int
	QueuedJobs  int
	DrawnOpaque int
	DrawnBlend  int
}

// Map ties the map pipeline together. AddBlock may be called from the
// network goroutine; Update and Render must run on the render thread.
type Map struct {
	shader  *graphics.Shader
	texture uint32

	store   *world.BlockStore
	tracker *meshing.Tracker
	pool    *meshing.Pool
	queue   *meshing.Queue

	models    map[world.BlockPos]*blockModel
	nextIndex uint64
	consume   map[world.BlockPos]*meshing.MeshData

	blendScratch []blendEntry
	drawnOpaque  int
	drawnBlend   int
}

// NewMap compiles the map shader, uploads the atlas and starts the mesh
// workers. Must run on the render thread.
func NewMap(info *meshing.Info, cfg config.Settings, atlasImg *image.NRGBA) (*Map, error) {
	shader, err := graphics.NewShader(mapVertShader, mapFragShader)
	if err != nil {
		return nil, err
	}

	m := &Map{
		shader:       shader,
		texture:      graphics.UploadTexture(atlasImg),
		store:        world.NewBlockStore(),
		queue:        meshing.NewQueue(),
		models:       make(map[world.BlockPos]*blockModel),
		consume:      make(map[world.BlockPos]*meshing.MeshData),
		blendScratch: make([]blendEntry, 0, 256),
	}
	m.pool = meshing.NewPool(cfg.MeshWorkers, meshQueueSize, info, cfg, m.store, m.queue)
	m.tracker = meshing.NewTracker(m.store, m.pool.Submit)

	m.shader.Use()
	m.shader.SetInt("atlasTex", 0)
	return m, nil
}

// AddBlock hands a decoded block to the readiness tracker, which inserts
// it into the store and schedules mesh jobs once neighbors allow.
func (m *Map) AddBlock(pos world.BlockPos, blk *world.MapBlock) {
	m.tracker.AddBlock(pos, blk)
}

// Update drains finished meshes into the model table and promotes blocks
// whose neighbors never arrived. Runs before Render each frame.
func (m *Map) Update() {
	defer profiling.Track("blocks.Update")()

	m.tracker.PromoteStale()

	batch := m.queue.Swap(m.consume)
	for pos, data := range batch {
		if old := m.models[pos]; old != nil {
			old.delete()
			delete(m.models, pos)
		}
		if model := newBlockModel(pos, data); model != nil {
			model.index = m.nextIndex
			m.nextIndex++
			m.models[pos] = model
		}
		delete(batch, pos)
	}
	m.consume = batch
}

// Render draws all visible block models: the opaque partition in table
// order, then the blended partition farthest first with depth writes off.
func (m *Map) Render(view, proj mgl32.Mat4, eye mgl32.Vec3) error {
	defer profiling.Track("blocks.Render")()

	m.shader.Use()
	m.shader.SetMatrix4("proj", &proj[0])
	m.shader.SetMatrix4("view", &view[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)

	clip := proj.Mul4(view)
	m.drawnOpaque = 0
	m.drawnBlend = 0
	blend := m.blendScratch[:0]

	for _, model := range m.models {
		if !graphics.AABBInFrustum(model.aabbMin, model.aabbMax, clip) {
			continue
		}
		if model.opaque != nil {
			m.drawMesh(model.opaque, model.transform)
			m.drawnOpaque++
		}
		if model.blend != nil {
			diff := model.center.Sub(eye)
			blend = append(blend, blendEntry{model: model, dist: diff.Dot(diff)})
		}
	}

	if len(blend) > 0 {
		sortBlendEntries(blend)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		for _, e := range blend {
			m.drawMesh(e.model.blend, e.model.transform)
			m.drawnBlend++
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
	m.blendScratch = blend

	gl.BindVertexArray(0)
	return graphics.CheckGL()
}

func (m *Map) drawMesh(mesh *blockMesh, transform mgl32.Mat4) {
	m.shader.SetMatrix4("model", &transform[0])
	gl.BindVertexArray(mesh.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mesh.count)
}

// Counts reports the state drawn by the last frame.
func (m *Map) Counts() Counts {
	return Counts{
		Blocks:      m.store.Len(),
		Deferred:    m.tracker.DeferredCount(),
		Models:      len(m.models),
		QueuedJobs:  m.pool.QueueLen(),
		DrawnOpaque: m.drawnOpaque,
		DrawnBlend:  m.drawnBlend,
	}
}

// Dispose stops the workers and releases all GL resources.
func (m *Map) Dispose() {
	m.pool.Shutdown()
	for pos, model := range m.models {
		model.delete()
		delete(m.models, pos)
	}
	graphics.DeleteTexture(m.texture)
	m.texture = 0
	m.shader.Delete()
}
