package motion

import (
	"math"

	"github.com/lixenwraith/monodice/dice"
)

type vec3 struct {
	x, y, z float64
}

// normals are the outward face normals in cube space
// Rotating normals[f] by dice.FaceOrientation(f) yields +Z (toward the viewer)
var normals = [7]vec3{
	1: {0, 0, 1},
	6: {0, 0, -1},
	2: {1, 0, 0},
	5: {-1, 0, 0},
	3: {0, -1, 0},
	4: {0, 1, 0},
}

// facingZ returns the viewer-axis component of v after rotating by o
// Y rotation is applied first, then X
func facingZ(v vec3, o dice.Orientation) float64 {
	sy, cy := math.Sincos(o.Y * math.Pi / 180)
	sx, cx := math.Sincos(o.X * math.Pi / 180)

	z1 := -v.x*sy + v.z*cy
	return v.y*sx + z1*cx
}

// VisibleFace returns the cube face pointing most directly at the viewer
func VisibleFace(o dice.Orientation) dice.Face {
	best := dice.Face(1)
	bestZ := math.Inf(-1)
	for f := dice.Face(1); f <= 6; f++ {
		if z := facingZ(normals[f], o); z > bestZ {
			best, bestZ = f, z
		}
	}
	return best
}

// wrapDegrees maps an angle into [0, 360)
func wrapDegrees(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// advanceAxis moves current forward by revs full turns plus the residual to target
// The result is congruent to target mod 360 and never behind current
func advanceAxis(current, target float64, revs int) float64 {
	residual := wrapDegrees(target - wrapDegrees(current))
	return current + float64(revs)*360 + residual
}

// Advance returns the pose reached by spinning from current onto face f
func Advance(current dice.Orientation, f dice.Face, revsX, revsY int) dice.Orientation {
	target := dice.FaceOrientation(f)
	return dice.Orientation{
		X: advanceAxis(current.X, target.X, revsX),
		Y: advanceAxis(current.Y, target.Y, revsY),
	}
}

// lerpOrientation interpolates per axis
func lerpOrientation(a, b dice.Orientation, t float64) dice.Orientation {
	return dice.Orientation{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// EaseOutCubic decelerates toward t=1, clamped to [0, 1]
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}
