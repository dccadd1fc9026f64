package input

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Press("esc"), `key-press "esc"`},
		{Release("r"), `key-release "r"`},
		{Move(10, 20), "mouse-move (10, 20)"},
		{Click(1.5, 2), "mouse-release (1.5, 2)"},
		{Scroll(3, 4, -1), "wheel (3, 4) -1"},
		{Event{Kind: Kind(42)}, "kind(42) (0, 0)"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClickUsesLeftButton(t *testing.T) {
	if e := Click(0, 0); e.Button != ButtonLeft || e.Kind != MouseRelease {
		t.Errorf("Click() = %+v", e)
	}
}
