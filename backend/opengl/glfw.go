package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/tiles"
)

// Window is the GLFW window and its GL context. It queues GLFW callbacks
// as tiles.Events and presents frames, so it serves as both the loop's
// EventSource and its Presenter.
type Window struct {
	window *glfw.Window
	queue  []tiles.Event
}

var (
	_ tiles.EventSource = (*Window)(nil)
	_ tiles.Presenter   = (*Window)(nil)
)

// WindowOption configures OpenWindow.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates the window invisible, for off-screen rendering.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// OpenWindow initializes GLFW, creates the window described by cfg, makes
// its context current and loads the GL bindings. The caller must be
// on the main OS thread.
func OpenWindow(cfg tiles.Config, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	contextHints()
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if o.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := initBindings(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: window}

	// Setup callbacks
	window.SetCloseCallback(w.closeCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	window.SetKeyCallback(w.keyCallback)

	return w, nil
}

// PollEvents processes pending GLFW events and returns them in arrival order.
func (w *Window) PollEvents() []tiles.Event {
	glfw.PollEvents()
	events := w.queue
	w.queue = nil
	return events
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Destroy closes the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) push(ev tiles.Event) {
	w.queue = append(w.queue, ev)
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.push(tiles.QuitEvent())
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.push(tiles.ResizeEvent(width, height))
}

// Escape quits as well; fullscreen windows have no close button.
func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.push(tiles.QuitEvent())
	}
}
