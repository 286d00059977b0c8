package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of the render buffer
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs tcell.AttrMask
}

// RenderBuffer is a cell compositor with touched tracking
// Untouched cells receive the default background on flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int

	background tcell.Color
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int, background tcell.Color) *RenderBuffer {
	b := &RenderBuffer{background: background}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// SetBackground changes the default background applied to untouched cells
func (b *RenderBuffer) SetBackground(bg tcell.Color) {
	b.background = bg
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: b.background}
	b.touched[0] = false

	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg tcell.Color, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
	b.touched[idx] = true
}

// SetFgOnly writes rune, foreground and attrs while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg tcell.Color, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// FillRect paints a rectangle's background
func (b *RenderBuffer) FillRect(x, y, w, h int, bg tcell.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetWithBg(col, row, ' ', tcell.ColorDefault, bg, tcell.AttrNone)
		}
	}
}

// Text writes s starting at (x, y) over the existing background
// Returns the number of columns consumed
func (b *RenderBuffer) Text(x, y int, s string, fg tcell.Color, attrs tcell.AttrMask) int {
	col := x
	for _, r := range s {
		b.SetFgOnly(col, y, r, fg, attrs)
		col += max(runewidth.RuneWidth(r), 1)
	}
	return col - x
}

// TextCentered writes s horizontally centered on row y
func (b *RenderBuffer) TextCentered(y int, s string, fg tcell.Color, attrs tcell.AttrMask) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	b.Text(x, y, s, fg, attrs)
}

// Get returns the cell at (x, y); zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = b.background
		}
	}
}

// FlushToScreen writes the render buffer to a tcell screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
