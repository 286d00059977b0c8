package render

import (
	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
)

// Point is a cell coordinate
type Point struct {
	X, Y int
}

// Rect is a cell-aligned area
type Rect struct {
	X, Y, W, H int
}

// RowSizes returns how many dice sit on each row
// 1-2 dice share one row, 3-4 split two per row, 5 splits three then two
func RowSizes(count int) []int {
	switch dice.ClampCount(count) {
	case 1:
		return []int{1}
	case 2:
		return []int{2}
	case 3:
		return []int{2, 1}
	case 4:
		return []int{2, 2}
	default:
		return []int{3, 2}
	}
}

// DieOrigins returns the top-left corner of every die, rows centered in area
// Dice are placed left to right, row by row, in outcome order
func DieOrigins(count int, area Rect) []Point {
	rows := RowSizes(count)

	blockH := len(rows)*constant.DieHeight + (len(rows)-1)*constant.DieGapY
	y := area.Y + (area.H-blockH)/2

	origins := make([]Point, 0, count)
	for _, n := range rows {
		rowW := n*constant.DieWidth + (n-1)*constant.DieGapX
		x := area.X + (area.W-rowW)/2
		for i := 0; i < n; i++ {
			origins = append(origins, Point{X: x + i*(constant.DieWidth+constant.DieGapX), Y: y})
		}
		y += constant.DieHeight + constant.DieGapY
	}
	return origins
}
