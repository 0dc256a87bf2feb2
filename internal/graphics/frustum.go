package graphics

import "github.com/go-gl/mathgl/mgl32"

// AABBInFrustum tests an axis-aligned box against the camera frustum with
// clip-space half-space tests. clip is projection * view. A box is culled
// only when all eight corners fall outside the same frustum plane, so the
// test never rejects a box that straddles the frustum.
func AABBInFrustum(min, max mgl32.Vec3, clip mgl32.Mat4) bool {
	corners := [8]mgl32.Vec4{
		{min.X(), min.Y(), min.Z(), 1.0},
		{max.X(), min.Y(), min.Z(), 1.0},
		{min.X(), max.Y(), min.Z(), 1.0},
		{max.X(), max.Y(), min.Z(), 1.0},
		{min.X(), min.Y(), max.Z(), 1.0},
		{max.X(), min.Y(), max.Z(), 1.0},
		{min.X(), max.Y(), max.Z(), 1.0},
		{max.X(), max.Y(), max.Z(), 1.0},
	}

	var v [8]mgl32.Vec4
	for i := range corners {
		v[i] = clip.Mul4x1(corners[i])
	}

	// Signed distance past each plane: positive means outside.
	planes := [6]func(c mgl32.Vec4) float32{
		func(c mgl32.Vec4) float32 { return c.X() - c.W() },  // right
		func(c mgl32.Vec4) float32 { return -c.X() - c.W() }, // left
		func(c mgl32.Vec4) float32 { return c.Y() - c.W() },  // top
		func(c mgl32.Vec4) float32 { return -c.Y() - c.W() }, // bottom
		func(c mgl32.Vec4) float32 { return c.Z() - c.W() },  // far
		func(c mgl32.Vec4) float32 { return -c.Z() - c.W() }, // near
	}

	for _, plane := range planes {
		allOutside := true
		for i := range v {
			if plane(v[i]) <= 0 {
				allOutside = false
				break
			}
		}
		if allOutside {
			return false
		}
	}
	return true
}
