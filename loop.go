package tiles

import (
	"log/slog"
	"time"
)

// Scene is what the loop draws each frame. The OpenGL renderer
// implements it.
type Scene interface {
	Resize(width, height int)
	Draw()
}

// Presenter shows the finished frame, blocking on vsync if enabled.
type Presenter interface {
	SwapBuffers()
}

// State is the loop's run state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Loop is the application's event/draw/present cycle.
type Loop struct {
	events    EventSource
	scene     Scene
	presenter Presenter

	logger   *slog.Logger
	now      func() time.Time
	resize   bool
	teardown []func()

	state    State
	fps      FrameCounter
	frames   uint64
	tornDown bool
}

// NewLoop creates a loop in the Running state.
func NewLoop(events EventSource, scene Scene, presenter Presenter, opts ...LoopOption) *Loop {
	l := &Loop{
		events:    events,
		scene:     scene,
		presenter: presenter,
		logger:    slog.Default(),
		now:       time.Now,
		resize:    true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State returns the current run state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs one iteration: fps bookkeeping, draining events, drawing and
// presenting. A quit event still lets the current frame finish.
// It reports whether the loop is still running.
func (l *Loop) Step() bool {
	if l.state == Stopped {
		return false
	}

	if n, due := l.fps.Tick(l.now()); due {
		l.logger.Info("fps", "frames", n)
	}

	for _, ev := range l.events.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			l.state = Stopped
		case EventResize:
			if l.resize {
				l.scene.Resize(ev.Width, ev.Height)
			}
		}
	}

	l.scene.Draw()
	l.presenter.SwapBuffers()
	l.frames++

	return l.state == Running
}

// Run steps until a quit event arrives, then runs the teardown hooks.
// Hooks run once even if Run is called again.
func (l *Loop) Run() {
	for l.Step() {
	}
	l.close()
}

func (l *Loop) close() {
	if l.tornDown {
		return
	}
	l.tornDown = true
	l.logger.Debug("teardown", "frames", l.frames)
	for _, fn := range l.teardown {
		fn()
	}
}
