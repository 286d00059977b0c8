package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/engine"
)

// Run drives the app on loop until quit or the event source stops
// Blocks on the calling goroutine, which becomes the UI goroutine
func Run(a *App, loop *engine.Loop, events <-chan tcell.Event) {
	engine.Go(func() {
		for {
			select {
			case <-loop.Stopped():
				return
			case ev := <-events:
				posted := loop.Post(func() {
					if !a.HandleEvent(ev) {
						loop.Stop()
					}
				})
				if !posted {
					return
				}
			}
		}
	})

	a.Draw(loop.Now())
	loop.Run(constant.FrameUpdateInterval, a.Draw)
	a.Close()
}
