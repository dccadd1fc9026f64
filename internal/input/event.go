// Package input defines the window events consumed by the application
// handler. The window backend translates its native input state into these
// values once per frame.
package input

import "fmt"

// Kind identifies the type of an Event.
type Kind int

const (
	KeyPress Kind = iota
	KeyRelease
	MouseMove
	MouseRelease
	Wheel
)

func (k Kind) String() string {
	switch k {
	case KeyPress:
		return "key-press"
	case KeyRelease:
		return "key-release"
	case MouseMove:
		return "mouse-move"
	case MouseRelease:
		return "mouse-release"
	case Wheel:
		return "wheel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a single input event. Key is set for key events, X and Y for
// mouse events and Delta for wheel events (positive scrolls up).
type Event struct {
	Kind   Kind
	Key    string
	X, Y   float32
	Button Button
	Delta  float64
}

// Press returns a key press event.
func Press(key string) Event { return Event{Kind: KeyPress, Key: key} }

// Release returns a key release event.
func Release(key string) Event { return Event{Kind: KeyRelease, Key: key} }

// Move returns a cursor motion event.
func Move(x, y float32) Event { return Event{Kind: MouseMove, X: x, Y: y} }

// Click returns a left button release event.
func Click(x, y float32) Event {
	return Event{Kind: MouseRelease, X: x, Y: y, Button: ButtonLeft}
}

// Scroll returns a wheel event at x, y.
func Scroll(x, y float32, delta float64) Event {
	return Event{Kind: Wheel, X: x, Y: y, Delta: delta}
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress, KeyRelease:
		return fmt.Sprintf("%s %q", e.Kind, e.Key)
	case Wheel:
		return fmt.Sprintf("%s (%v, %v) %+v", e.Kind, e.X, e.Y, e.Delta)
	default:
		return fmt.Sprintf("%s (%v, %v)", e.Kind, e.X, e.Y)
	}
}
