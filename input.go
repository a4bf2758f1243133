package tiles

import "fmt"

// EventKind identifies an input event the loop reacts to.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is a single queued input event. Width and Height are only set
// for EventResize and hold the new framebuffer size in pixels.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// QuitEvent returns an event requesting the application to stop.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// ResizeEvent returns a framebuffer resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

func (e Event) String() string {
	if e.Kind == EventResize {
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	}
	return e.Kind.String()
}

// EventSource yields the events queued since the last call.
type EventSource interface {
	PollEvents() []Event
}
