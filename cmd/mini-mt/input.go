package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mini-mt/internal/graphics"
)

const (
	flySpeed         = 25.0
	mouseSensitivity = 0.1
)

func installMouseLook(window *glfw.Window, cam *graphics.Camera) {
	var lastX, lastY float64
	first := true

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if first {
			lastX, lastY = x, y
			first = false
			return
		}
		dx := float32(x-lastX) * mouseSensitivity
		dy := float32(lastY-y) * mouseSensitivity
		lastX, lastY = x, y
		cam.Look(dx, dy)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
}

func handleMovement(window *glfw.Window, cam *graphics.Camera, dt float32) {
	var move mgl32.Vec3
	fwd := cam.Forward()
	right := cam.Right()

	if window.GetKey(glfw.KeyW) == glfw.Press {
		move = move.Add(fwd)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		move = move.Sub(fwd)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		move = move.Add(right)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		move = move.Sub(right)
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		move[1]++
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		move[1]--
	}

	if move.Len() > 0 {
		cam.Position = cam.Position.Add(move.Normalize().Mul(flySpeed * dt))
	}
}
