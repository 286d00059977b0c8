package dice

import (
	"slices"

	"github.com/lixenwraith/monodice/constant"
)

// Generator produces roll outcomes
type Generator struct {
	src Source
}

// NewGenerator creates a generator drawing from src
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Roll draws a single uniform face
func (g *Generator) Roll() Face {
	return Face(g.src.IntN(constant.FaceSpan) + constant.FaceMin)
}

// Generate returns count independent faces sorted ascending
// Sorting keeps identical outcome sets laid out identically
// count is clamped to the selectable range
func (g *Generator) Generate(count int) []Face {
	count = ClampCount(count)

	faces := make([]Face, count)
	for i := range faces {
		faces[i] = g.Roll()
	}
	slices.Sort(faces)
	return faces
}

// ClampCount bounds a die count to the selectable range
func ClampCount(count int) int {
	if count < constant.MinDice {
		return constant.MinDice
	}
	if count > constant.MaxDice {
		return constant.MaxDice
	}
	return count
}
