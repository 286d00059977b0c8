package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/motion"
)

const pipRune = '●'

type boxGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var (
	boxRest   = boxGlyphs{'╭', '╮', '╰', '╯', '─', '│'}
	boxMotion = boxGlyphs{'┏', '┓', '┗', '┛', '━', '┃'}
)

// jitterOffset maps in-plane rotation to a horizontal cell shift of -1, 0 or 1
func jitterOffset(rotation float64) int {
	dx := int(math.Round(rotation / constant.ShakeMaxRotation))
	return max(-1, min(1, dx))
}

// pipCell returns the position of 3x3 grid cell idx inside a die at origin
func pipCell(origin Point, idx int) Point {
	return Point{
		X: origin.X + 2 + (idx%3)*constant.PipColumnDx,
		Y: origin.Y + 1 + idx/3,
	}
}

// drawDie renders one die: outline, ivory face and pips for the posed face
func drawDie(buf *RenderBuffer, origin Point, pose motion.Pose) {
	origin.X += jitterOffset(pose.Rotation)

	glyphs, edge := boxRest, RgbDieEdge
	if !pose.Settled {
		glyphs, edge = boxMotion, RgbDieEdgeSpin
	}
	attrs := tcell.AttrNone
	if pose.Scale > 1 {
		attrs = tcell.AttrBold
	}

	w, h := constant.DieWidth, constant.DieHeight
	right, bottom := origin.X+w-1, origin.Y+h-1

	buf.FillRect(origin.X, origin.Y, w, h, RgbDieFace)
	for x := origin.X + 1; x < right; x++ {
		buf.SetFgOnly(x, origin.Y, glyphs.h, edge, attrs)
		buf.SetFgOnly(x, bottom, glyphs.h, edge, attrs)
	}
	for y := origin.Y + 1; y < bottom; y++ {
		buf.SetFgOnly(origin.X, y, glyphs.v, edge, attrs)
		buf.SetFgOnly(right, y, glyphs.v, edge, attrs)
	}
	buf.SetFgOnly(origin.X, origin.Y, glyphs.tl, edge, attrs)
	buf.SetFgOnly(right, origin.Y, glyphs.tr, edge, attrs)
	buf.SetFgOnly(origin.X, bottom, glyphs.bl, edge, attrs)
	buf.SetFgOnly(right, bottom, glyphs.br, edge, attrs)

	pip := RgbPipBlack
	if dice.RedPips(pose.Face) {
		pip = RgbPipRed
	}
	for _, idx := range dice.Pips(pose.Face) {
		p := pipCell(origin, idx)
		buf.SetFgOnly(p.X, p.Y, pipRune, pip, tcell.AttrNone)
	}
}
