// Package terminal owns the tcell screen lifecycle and input polling
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monodice/engine"
)

// TerminalService manages terminal lifecycle and input polling
type TerminalService struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	finalized bool
}

// NewService creates a new terminal service
func NewService() *TerminalService {
	return &TerminalService{
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements Service
// A tcell.Screen among args is used instead of the real terminal
func (s *TerminalService) Init(args ...any) error {
	for _, arg := range args {
		if screen, ok := arg.(tcell.Screen); ok {
			s.screen = screen
		}
	}

	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal screen: %w", err)
		}
		s.screen = screen
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()

	engine.SetCrashCleanup(s.screen.Fini)
	return nil
}

// Start implements Service - launches input polling goroutine
func (s *TerminalService) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	engine.Go(s.pollLoop)
	return nil
}

// pollLoop reads input events until stop signal
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		// nil once the screen is finalized
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements Service - signals stop and restores terminal
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	finalized := s.finalized
	s.finalized = true
	s.mu.Unlock()

	if wasRunning {
		close(s.stopCh)

		// Post synthetic interrupt to unblock PollEvent
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}

	if s.screen != nil && !finalized {
		s.screen.Fini()
		engine.SetCrashCleanup(nil)
	}
	return nil
}

// Screen returns the wrapped screen
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *TerminalService) Events() <-chan tcell.Event {
	return s.eventCh
}
