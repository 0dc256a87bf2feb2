package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	// ErrSurfaceLost means the GL context was lost. The frame should be
	// skipped and the surface reconfigured.
	ErrSurfaceLost = errors.New("graphics: surface lost")

	// ErrOutOfMemory means the driver could not satisfy an allocation.
	// Not recoverable; the caller should shut the session down.
	ErrOutOfMemory = errors.New("graphics: device out of memory")
)

// GL_CONTEXT_LOST is a 4.5 enum, absent from the 4.1 core bindings.
const glContextLost = 0x0507

// CheckGL drains the GL error flag and maps fatal conditions to typed
// errors so callers can distinguish a lost surface from a dead device.
func CheckGL() error {
	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case glContextLost:
		return ErrSurfaceLost
	default:
		return fmt.Errorf("graphics: GL error 0x%04x", code)
	}
}
