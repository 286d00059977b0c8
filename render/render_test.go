package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/motion"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return NewRenderer(screen), screen
}

// rowText returns the runes of buffer row y as a string
func rowText(buf *RenderBuffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func settled(f dice.Face) motion.Pose {
	return motion.Pose{Face: f, Orientation: dice.FaceOrientation(f), Scale: 1, Settled: true}
}

// TestRowSizes verifies the per-count layout table
func TestRowSizes(t *testing.T) {
	tests := []struct {
		count int
		want  []int
	}{
		{1, []int{1}},
		{2, []int{2}},
		{3, []int{2, 1}},
		{4, []int{2, 2}},
		{5, []int{3, 2}},
		{0, []int{1}},
		{9, []int{3, 2}},
	}

	for _, tt := range tests {
		if got := RowSizes(tt.count); !slices.Equal(got, tt.want) {
			t.Errorf("RowSizes(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

// TestDieOriginsNoOverlap verifies dice are centered and never overlap
func TestDieOriginsNoOverlap(t *testing.T) {
	area := Rect{X: 0, Y: 3, W: 80, H: 14}

	for count := 1; count <= 5; count++ {
		origins := DieOrigins(count, area)
		if len(origins) != count {
			t.Fatalf("Count %d: got %d origins", count, len(origins))
		}

		for i, a := range origins {
			if a.X < 0 || a.X+constant.DieWidth > area.W {
				t.Errorf("Count %d die %d outside width: %+v", count, i, a)
			}
			if a.Y < area.Y || a.Y+constant.DieHeight > area.Y+area.H {
				t.Errorf("Count %d die %d outside height: %+v", count, i, a)
			}
			for j, b := range origins[i+1:] {
				overlapX := a.X < b.X+constant.DieWidth && b.X < a.X+constant.DieWidth
				overlapY := a.Y < b.Y+constant.DieHeight && b.Y < a.Y+constant.DieHeight
				if overlapX && overlapY {
					t.Errorf("Count %d: dice %d and %d overlap", count, i, i+1+j)
				}
			}
		}
	}

	// Single die sits at the horizontal center
	one := DieOrigins(1, area)[0]
	if one.X != (80-constant.DieWidth)/2 {
		t.Errorf("Expected centered die at x=%d, got %d", (80-constant.DieWidth)/2, one.X)
	}
}

// TestDrawGamePips verifies pip placement and colour for each face
func TestDrawGamePips(t *testing.T) {
	r, _ := newTestRenderer(t)

	for f := dice.Face(1); f <= 6; f++ {
		r.DrawGame(GameView{Poses: []motion.Pose{settled(f)}})

		buf := r.Buffer()
		origin := DieOrigins(1, diceArea(buf.Size()))[0]

		want := RgbPipBlack
		if f == 1 || f == 4 {
			want = RgbPipRed
		}

		lit := 0
		for idx := 0; idx < 9; idx++ {
			p := pipCell(origin, idx)
			c := buf.Get(p.X, p.Y)
			if dice.HasPip(f, idx) {
				lit++
				if c.Rune != pipRune {
					t.Errorf("Face %d cell %d: expected pip, got %q", f, idx, c.Rune)
				}
				if c.Fg != want {
					t.Errorf("Face %d cell %d: wrong pip colour", f, idx)
				}
			} else if c.Rune == pipRune {
				t.Errorf("Face %d cell %d: unexpected pip", f, idx)
			}
			if c.Bg != RgbDieFace {
				t.Errorf("Face %d cell %d: expected die face background", f, idx)
			}
		}
		if lit != int(f) {
			t.Errorf("Face %d: expected %d pips, got %d", f, f, lit)
		}

		if corner := buf.Get(origin.X, origin.Y).Rune; corner != boxRest.tl {
			t.Errorf("Face %d: expected rest outline, got %q", f, corner)
		}
	}
}

// TestDrawGameMotionOutline verifies in-flight poses use the motion outline and jitter
func TestDrawGameMotionOutline(t *testing.T) {
	r, _ := newTestRenderer(t)

	pose := motion.Pose{Face: 3, Rotation: 15, Scale: 1.05}
	r.DrawGame(GameView{Poses: []motion.Pose{pose}, Rolling: true})

	buf := r.Buffer()
	origin := DieOrigins(1, diceArea(buf.Size()))[0]

	if c := buf.Get(origin.X+1, origin.Y); c.Rune != boxMotion.tl {
		t.Errorf("Expected shifted motion outline at x+1, got %q", c.Rune)
	}
	if c := buf.Get(origin.X+1, origin.Y); c.Attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold outline when scaled up")
	}
}

// TestDrawGameButtonLabel verifies the roll button reflects the rolling flag
func TestDrawGameButtonLabel(t *testing.T) {
	r, _ := newTestRenderer(t)
	poses := []motion.Pose{settled(2), settled(5)}

	r.DrawGame(GameView{Poses: poses})
	_, h := r.Buffer().Size()
	if row := rowText(r.Buffer(), h-5); !strings.Contains(row, "[ ROLL ]") {
		t.Errorf("Expected ROLL label, got %q", row)
	}

	r.DrawGame(GameView{Poses: poses, Rolling: true})
	if row := rowText(r.Buffer(), h-5); !strings.Contains(row, "Rolling...") {
		t.Errorf("Expected Rolling... label, got %q", row)
	}
}

// TestDrawGameStatusAndIndicator verifies the debug line and mute indicator
func TestDrawGameStatusAndIndicator(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.DrawGame(GameView{Poses: []motion.Pose{settled(6)}, Muted: true, Status: "rolls.accepted=3"})
	buf := r.Buffer()
	_, h := buf.Size()

	if row := rowText(buf, h-1); !strings.HasPrefix(row, "rolls.accepted=3") {
		t.Errorf("Expected status line, got %q", row)
	}
	if row := rowText(buf, 0); !strings.Contains(row, constant.MutedIndicator) {
		t.Errorf("Expected muted indicator, got %q", row)
	}

	r.DrawGame(GameView{Poses: []motion.Pose{settled(6)}})
	if row := rowText(buf, h-1); strings.TrimSpace(row) != "" {
		t.Errorf("Expected empty status line, got %q", row)
	}
}

// TestDrawSelection verifies title, options and highlight
func TestDrawSelection(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.DrawSelection(SelectionView{Selected: 3})
	buf := r.Buffer()
	_, h := buf.Size()
	cy := h / 2

	if row := rowText(buf, cy-5); !strings.Contains(row, constant.TitleText) {
		t.Errorf("Expected title, got %q", row)
	}
	if row := rowText(buf, cy+3); !strings.Contains(row, constant.TaglineText) {
		t.Errorf("Expected tagline, got %q", row)
	}

	row := rowText(buf, cy)
	for n := 1; n <= 5; n++ {
		x := strings.IndexRune(row, rune('0'+n))
		if x < 0 {
			t.Fatalf("Option %d missing from %q", n, row)
		}
		bg := buf.Get(x, cy).Bg
		if n == 3 && bg != RgbSelection {
			t.Error("Expected option 3 highlighted")
		}
		if n != 3 && bg == RgbSelection {
			t.Errorf("Option %d highlighted unexpectedly", n)
		}
	}

	// Frame reached the screen
	x := strings.Index(rowText(buf, cy-5), constant.TitleText)
	if mainc, _, _, _ := screen.GetContent(x, cy-5); mainc != 'M' {
		t.Errorf("Expected title flushed to screen, got %q", mainc)
	}
}

// TestRenderBufferBounds verifies out-of-range writes are ignored and resize clears
func TestRenderBufferBounds(t *testing.T) {
	buf := NewRenderBuffer(4, 2, RgbFelt)

	buf.SetWithBg(-1, 0, 'x', RgbTitle, RgbFelt, tcell.AttrNone)
	buf.SetWithBg(4, 1, 'x', RgbTitle, RgbFelt, tcell.AttrNone)
	buf.SetFgOnly(0, 2, 'x', RgbTitle, tcell.AttrNone)

	for y := 0; y < 2; y++ {
		if row := rowText(buf, y); row != "    " {
			t.Errorf("Row %d modified by out-of-bounds write: %q", y, row)
		}
	}

	buf.SetWithBg(1, 1, 'x', RgbTitle, RgbDieFace, tcell.AttrNone)
	if c := buf.Get(1, 1); c.Rune != 'x' || c.Bg != RgbDieFace {
		t.Errorf("Expected written cell, got %+v", c)
	}

	buf.Resize(6, 3)
	if c := buf.Get(1, 1); c.Rune != ' ' {
		t.Errorf("Expected cleared cell after resize, got %q", c.Rune)
	}
	if w, h := buf.Size(); w != 6 || h != 3 {
		t.Errorf("Expected 6x3, got %dx%d", w, h)
	}
}
