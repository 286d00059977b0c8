// Package app is the screen state machine: die-count selection and the dice table
package app

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/engine"
	"github.com/lixenwraith/monodice/game"
	"github.com/lixenwraith/monodice/motion"
	"github.com/lixenwraith/monodice/render"
	"github.com/lixenwraith/monodice/status"
)

// Screen identifies the active view
type Screen int

const (
	ScreenSelect Screen = iota
	ScreenGame
)

// Options wires an App to its collaborators
type Options struct {
	Screen    tcell.Screen
	Scheduler engine.Scheduler
	Clock     engine.TimeProvider
	Source    dice.Source
	Sound     Sound // Optional
	Variant   motion.Variant
	Stats     *status.Registry // Optional
	Debug     bool
}

// App owns the active view and routes input to it
// Every method runs on the UI goroutine
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sched    engine.Scheduler
	clock    engine.TimeProvider
	src      dice.Source
	gen      *dice.Generator
	sound    Sound
	variant  motion.Variant
	stats    *status.Registry
	debug    bool

	current  Screen
	selected int
	ctrl     *game.Controller
}

// New creates an app showing the selection view
func New(opts Options) *App {
	if opts.Sound == nil {
		opts.Sound = nopSound{}
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	return &App{
		screen:   opts.Screen,
		renderer: render.NewRenderer(opts.Screen),
		sched:    opts.Scheduler,
		clock:    opts.Clock,
		src:      opts.Source,
		gen:      dice.NewGenerator(opts.Source),
		sound:    opts.Sound,
		variant:  opts.Variant,
		stats:    opts.Stats,
		debug:    opts.Debug,
		current:  ScreenSelect,
		selected: constant.MinDice,
	}
}

// Current returns the active view
func (a *App) Current() Screen {
	return a.current
}

// Selected returns the highlighted die count
func (a *App) Selected() int {
	return a.selected
}

// Controller returns the game controller, nil on the selection view
func (a *App) Controller() *game.Controller {
	return a.ctrl
}

// HandleEvent applies one input event; returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
			enabled := a.sound.ToggleMute()
			log.Printf("app: sound enabled=%t", enabled)
			return true
		}

		if a.current == ScreenGame {
			a.handleGameKey(ev)
		} else {
			a.handleSelectKey(ev)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	}

	return true
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func (a *App) handleSelectKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft:
		a.selected = max(a.selected-1, constant.MinDice)
	case tcell.KeyDown, tcell.KeyRight:
		a.selected = min(a.selected+1, constant.MaxDice)
	case tcell.KeyEnter:
		a.enterGame(a.selected)
	case tcell.KeyRune:
		if r := ev.Rune(); r >= '0'+constant.MinDice && r <= '0'+constant.MaxDice {
			a.selected = int(r - '0')
			a.enterGame(a.selected)
		}
	}
}

func (a *App) handleGameKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		a.roll()
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		a.leaveGame()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.roll()
		case 'r':
			a.leaveGame()
		}
	}
}

// enterGame mounts a fresh session with count dice
func (a *App) enterGame(count int) {
	a.ctrl = game.NewController(count, game.Deps{
		Generator: a.gen,
		Scheduler: a.sched,
		Clock:     a.clock,
		Sound:     a.sound.NewSession(),
		NewAnimator: func() motion.Animator {
			return motion.New(a.variant, a.src)
		},
		Stats: a.stats,
	})
	a.current = ScreenGame
	log.Printf("app: game view with %d dice %v", count, a.ctrl.Session().Values)
}

// leaveGame tears the session down and returns to selection
func (a *App) leaveGame() {
	if a.ctrl != nil {
		a.ctrl.Leave()
		a.ctrl = nil
	}
	a.current = ScreenSelect
}

func (a *App) roll() {
	if a.ctrl.Roll() {
		log.Printf("app: roll %d -> %v", a.ctrl.Session().Trigger, a.ctrl.Session().Values)
	}
}

// Draw renders the active view at now
func (a *App) Draw(now time.Time) {
	if a.current == ScreenSelect {
		a.renderer.DrawSelection(render.SelectionView{
			Selected: a.selected,
			Muted:    a.sound.IsMuted(),
		})
		return
	}

	view := render.GameView{
		Poses:   a.ctrl.Poses(now),
		Rolling: a.ctrl.Rolling(),
		Muted:   a.sound.IsMuted(),
	}
	if a.debug {
		view.Status = a.stats.Summary()
	}
	a.renderer.DrawGame(view)
}

// Close tears down an active session
func (a *App) Close() {
	if a.ctrl != nil {
		a.ctrl.Leave()
		a.ctrl = nil
	}
}
