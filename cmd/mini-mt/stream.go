package main

import (
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"mini-mt/internal/game"
	"mini-mt/internal/proto"
	"mini-mt/internal/world"
	"mini-mt/internal/worldgen"
)

// blocksPerFrame bounds generation work per frame so streaming never
// stalls rendering.
const blocksPerFrame = 4

// streamer plays the server role for the demo world: it generates blocks
// around the camera and delivers them through the wire codec, nearest
// first.
type streamer struct {
	gen       *worldgen.Generator
	session   *game.Session
	radius    int
	delivered map[world.BlockPos]bool

	todo     []world.BlockPos
	lastHome world.BlockPos
	primed   bool
}

func newStreamer(gen *worldgen.Generator, session *game.Session, radius int) *streamer {
	return &streamer{
		gen:       gen,
		session:   session,
		radius:    radius,
		delivered: make(map[world.BlockPos]bool),
	}
}

func (s *streamer) step(eye mgl32.Vec3) {
	home := world.BlockPos{
		X: int16(math.Floor(float64(eye.X()) / world.BlockSize)),
		Y: int16(math.Floor(float64(eye.Y()) / world.BlockSize)),
		Z: int16(math.Floor(float64(eye.Z()) / world.BlockSize)),
	}
	if !s.primed || home != s.lastHome {
		s.rebuildTodo(home)
		s.lastHome = home
		s.primed = true
	}

	for n := 0; n < blocksPerFrame && len(s.todo) > 0; n++ {
		pos := s.todo[0]
		s.todo = s.todo[1:]
		if s.delivered[pos] {
			continue
		}

		payload, err := proto.EncodeBlock(s.gen.GenerateBlock(pos), proto.VersionZstd)
		if err != nil {
			log.Printf("stream: encode %v: %v", pos, err)
			continue
		}
		if err := s.session.DeliverRawBlock(pos, payload); err != nil {
			log.Printf("stream: deliver %v: %v", pos, err)
			continue
		}
		s.delivered[pos] = true
	}
}

// rebuildTodo queues all undelivered positions in the cube around home,
// nearest first.
func (s *streamer) rebuildTodo(home world.BlockPos) {
	s.todo = s.todo[:0]
	r := s.radius
	for dz := -r; dz <= r; dz++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				pos := world.BlockPos{
					X: home.X + int16(dx),
					Y: home.Y + int16(dy),
					Z: home.Z + int16(dz),
				}
				if !s.delivered[pos] {
					s.todo = append(s.todo, pos)
				}
			}
		}
	}
	sort.Slice(s.todo, func(i, j int) bool {
		return distSq(s.todo[i], home) < distSq(s.todo[j], home)
	})
}

func distSq(a, b world.BlockPos) int {
	dx, dy, dz := int(a.X-b.X), int(a.Y-b.Y), int(a.Z-b.Z)
	return dx*dx + dy*dy + dz*dz
}
