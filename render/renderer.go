// Package render draws the selection and game views onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/motion"
)

// SelectionView is the state of the die-count picker
type SelectionView struct {
	Selected int // 1-5
	Muted    bool
}

// GameView is the state of the dice table for one frame
type GameView struct {
	Poses   []motion.Pose
	Rolling bool
	Muted   bool
	Status  string // Debug line, hidden when empty
}

// Renderer composes views into a RenderBuffer and flushes to the screen
// Called only from the UI goroutine
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h, RgbFelt),
	}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Resize syncs the buffer with the screen dimensions
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	}
}

// DrawSelection renders the die-count picker
func (r *Renderer) DrawSelection(v SelectionView) {
	r.begin()
	buf := r.buf
	w, h := buf.Size()
	cy := h / 2

	buf.TextCentered(cy-5, constant.TitleText, RgbTitle, tcell.AttrBold)
	buf.TextCentered(cy-3, constant.SubtitleText, RgbSubtitle, tcell.AttrNone)

	const cellW, gap = 5, 2
	total := constant.MaxDice*cellW + (constant.MaxDice-1)*gap
	x := (w - total) / 2
	for n := constant.MinDice; n <= constant.MaxDice; n++ {
		fg, bg, attrs := RgbOption, RgbFeltDark, tcell.AttrNone
		if n == v.Selected {
			fg, bg, attrs = RgbSelectionFg, RgbSelection, tcell.AttrBold
		}
		buf.FillRect(x, cy-1, cellW, 3, bg)
		buf.Text(x+cellW/2, cy, fmt.Sprint(n), fg, attrs)
		x += cellW + gap
	}

	buf.TextCentered(cy+3, constant.TaglineText, RgbTagline, tcell.AttrBold)
	buf.TextCentered(h-2, constant.SelectHelpText, RgbHelp, tcell.AttrNone)
	r.drawIndicator(v.Muted)

	r.present()
}

// DrawGame renders the dice table, roll button and optional status line
func (r *Renderer) DrawGame(v GameView) {
	r.begin()
	buf := r.buf
	w, h := buf.Size()

	buf.TextCentered(1, constant.TitleText, RgbTitle, tcell.AttrBold)

	origins := DieOrigins(len(v.Poses), diceArea(w, h))
	for i, pose := range v.Poses {
		drawDie(buf, origins[i], pose)
	}

	label, fg, attrs := constant.RollLabel, RgbButton, tcell.AttrBold
	if v.Rolling {
		label, fg, attrs = constant.RollingLabel, RgbButtonBusy, tcell.AttrDim
	}
	label = "[ " + label + " ]"
	bw := runewidth.StringWidth(label) + 4
	buf.FillRect((w-bw)/2, h-6, bw, 3, RgbFeltDark)
	buf.TextCentered(h-5, label, fg, attrs)

	buf.TextCentered(h-2, constant.GameHelpText, RgbHelp, tcell.AttrNone)
	if v.Status != "" {
		buf.Text(0, h-1, v.Status, RgbStatusBar, tcell.AttrNone)
	}
	r.drawIndicator(v.Muted)

	r.present()
}

// diceArea is the region between the title and the roll button
func diceArea(w, h int) Rect {
	return Rect{X: 0, Y: 3, W: w, H: max(h-10, 0)}
}

func (r *Renderer) drawIndicator(muted bool) {
	text, fg := constant.SoundIndicator, RgbHelp
	if muted {
		text, fg = constant.MutedIndicator, RgbIndicatorOff
	}
	w, _ := r.buf.Size()
	r.buf.Text(w-runewidth.StringWidth(text)-1, 0, text, fg, tcell.AttrNone)
}

func (r *Renderer) begin() {
	r.Resize()
	r.buf.Clear()
}

func (r *Renderer) present() {
	r.buf.FlushToScreen(r.screen)
	r.screen.Show()
}
