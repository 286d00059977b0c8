// Package game owns the per-view dice session and its roll lifecycle
package game

import (
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/motion"
)

// Session is the mutable state of one game view
// Recreated on every entry into the game view
type Session struct {
	Count   int
	Values  []dice.Face
	Rolling bool
	Trigger int // Incremented once per accepted roll, 0 at mount
}

// View returns the die view for index i
func (s *Session) View(i int) motion.DieView {
	return motion.DieView{
		Value:   s.Values[i],
		Rolling: s.Rolling,
		Trigger: s.Trigger,
	}
}

// Views returns the die views for every die
func (s *Session) Views() []motion.DieView {
	views := make([]motion.DieView, len(s.Values))
	for i := range views {
		views[i] = s.View(i)
	}
	return views
}
