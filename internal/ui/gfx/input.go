package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/llehouerou/spectra/internal/input"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

// trackedKeys are the physical keys translated into input events.
var trackedKeys = []ebiten.Key{
	ebiten.KeyEscape,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeySpace,
	ebiten.KeyEqual,
	ebiten.KeyNumpadAdd,
	ebiten.KeyMinus,
	ebiten.KeyNumpadSubtract,
	ebiten.KeyDelete,
	ebiten.KeyBackspace,
	ebiten.KeyR,
}

// repeatKeys keep emitting presses while held.
var repeatKeys = map[string]bool{"+": true, "-": true}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

// InputCollector turns ebiten's polled input state into events.
type InputCollector struct {
	cursorX, cursorY int
	seenCursor       bool
	events           []input.Event
}

// Collect returns the events that happened since the previous tick. The
// returned slice is reused by the next call.
func (c *InputCollector) Collect() []input.Event {
	c.events = c.events[:0]

	x, y := ebiten.CursorPosition()
	if !c.seenCursor || x != c.cursorX || y != c.cursorY {
		c.cursorX, c.cursorY, c.seenCursor = x, y, true
		c.events = append(c.events, input.Move(float32(x), float32(y)))
	}
	fx, fy := float32(x), float32(y)

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(mb.ebiten) {
			c.events = append(c.events, input.Event{
				Kind:   input.MouseRelease,
				X:      fx,
				Y:      fy,
				Button: mb.button,
			})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		c.events = append(c.events, input.Scroll(fx, fy, dy))
	}

	for _, k := range trackedKeys {
		name, ok := keyName(k)
		if !ok {
			continue
		}
		switch {
		case inpututil.IsKeyJustPressed(k):
			c.events = append(c.events, input.Press(name))
		case repeatKeys[name] && repeatDue(inpututil.KeyPressDuration(k)):
			c.events = append(c.events, input.Press(name))
		}
		if inpututil.IsKeyJustReleased(k) {
			c.events = append(c.events, input.Release(name))
		}
	}
	return c.events
}

// repeatDue reports whether a key held for ticks should fire again.
func repeatDue(ticks int) bool {
	if ticks <= repeatDelay {
		return false
	}
	return (ticks-repeatDelay)%repeatInterval == 0
}

// keyName maps an ebiten key to the name used by the key bindings.
func keyName(k ebiten.Key) (string, bool) {
	switch k {
	case ebiten.KeyEscape:
		return "esc", true
	case ebiten.KeyArrowUp:
		return "up", true
	case ebiten.KeyArrowDown:
		return "down", true
	case ebiten.KeySpace:
		return "space", true
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		return "+", true
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		return "-", true
	case ebiten.KeyDelete:
		return "delete", true
	case ebiten.KeyBackspace:
		return "backspace", true
	case ebiten.KeyR:
		return "r", true
	default:
		return "", false
	}
}
