package meshing

import (
	"context"
	"log"
	"sync"

	"mini-mt/internal/config"
	"mini-mt/internal/world"
)

// Pool is the fixed set of mesh worker goroutines. Each worker loops on the
// job channel, snapshots the block and its neighbors from the store, runs
// the mesher into a capacity-retained scratch buffer and publishes the
// result to the queue.
type Pool struct {
	jobs   chan world.BlockPos
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool starts workers immediately. queueSize bounds the number of
// pending jobs before Submit blocks.
func NewPool(workers, queueSize int, info *Info, cfg config.Settings, store *world.BlockStore, out *Queue) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan world.BlockPos, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i, info, cfg, store, out)
	}
	return p
}

// Submit queues a block for meshing, blocking while the queue is full.
func (p *Pool) Submit(pos world.BlockPos) {
	select {
	case p.jobs <- pos:
	case <-p.ctx.Done():
	}
}

// QueueLen returns the number of jobs waiting for a worker.
func (p *Pool) QueueLen() int {
	return len(p.jobs)
}

// Shutdown stops the workers and waits for them to exit. Running jobs are
// never cancelled mid-mesh.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool) worker(id int, info *Info, cfg config.Settings, store *world.BlockStore, out *Queue) {
	defer p.wg.Done()

	bufCap := 0
	for {
		select {
		case pos := <-p.jobs:
			if data := p.runJob(id, pos, info, cfg, store, bufCap); data != nil {
				bufCap = data.Cap()
				out.Publish(pos, data)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// runJob meshes one block. Meshing is best-effort and re-triggerable, so a
// panic is logged and the worker keeps running.
func (p *Pool) runJob(id int, pos world.BlockPos, info *Info, cfg config.Settings, store *world.BlockStore, bufCap int) (data *MeshData) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("meshing: worker %d: panic meshing %v: %v", id, pos, r)
			data = nil
		}
	}()

	blk, nbors := store.GetWithNeighbors(pos)
	if blk == nil {
		return nil
	}

	data = NewMeshData(bufCap)
	BuildMesh(info, cfg, blk, nbors, data)
	return data
}
