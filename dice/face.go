// Package dice holds the static die model and the outcome generator
package dice

import "github.com/lixenwraith/monodice/constant"

// Face is a die's top-showing value, 1-6
type Face int

// Valid reports whether f is a real face value
func (f Face) Valid() bool {
	return f >= constant.FaceMin && f <= constant.FaceMax
}

// Opposite returns the face on the other side of the cube
// Opposite faces always sum to 7
func (f Face) Opposite() Face {
	return 7 - f
}

// Pips maps each face to the lit cells of a row-major 3x3 grid
//
//	0 1 2
//	3 4 5
//	6 7 8
var pips = [7][]int{
	1: {4},
	2: {0, 8},
	3: {0, 4, 8},
	4: {0, 2, 6, 8},
	5: {0, 2, 4, 6, 8},
	6: {0, 2, 3, 5, 6, 8},
}

// Pips returns the grid cells that carry a dot for f
// Returns nil for invalid faces
func Pips(f Face) []int {
	if !f.Valid() {
		return nil
	}
	return pips[f]
}

// HasPip reports whether cell (0-8) carries a dot on face f
func HasPip(f Face, cell int) bool {
	for _, c := range Pips(f) {
		if c == cell {
			return true
		}
	}
	return false
}

// RedPips reports whether the face is drawn with red dots (1 and 4)
func RedPips(f Face) bool {
	return f == 1 || f == 4
}

// Orientation is a cube pose as rotations in degrees, X applied after Y
type Orientation struct {
	X, Y float64
}

// orientations brings each face to the viewer
// Opposite faces differ by 180 degrees on exactly one axis
var orientations = [7]Orientation{
	1: {X: 0, Y: 0},
	6: {X: 0, Y: 180},
	2: {X: 0, Y: -90},
	5: {X: 0, Y: 90},
	3: {X: -90, Y: 0},
	4: {X: 90, Y: 0},
}

// FaceOrientation returns the pose presenting f to the viewer
// Invalid faces map to the zero pose
func FaceOrientation(f Face) Orientation {
	if !f.Valid() {
		return Orientation{}
	}
	return orientations[f]
}
