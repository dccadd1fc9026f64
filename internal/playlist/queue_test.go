package playlist

import "testing"

func tracks(paths ...string) []Track {
	out := make([]Track, len(paths))
	for i, p := range paths {
		out[i] = Track{Path: p}
	}
	return out
}

func currentPath(q *PlayingQueue) string {
	if t := q.Current(); t != nil {
		return t.Path
	}
	return ""
}

func TestNewQueue(t *testing.T) {
	q := NewQueue()

	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
	if q.Current() != nil {
		t.Error("Current() should be nil for empty queue")
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
	if q.Next() != nil || q.Prev() != nil {
		t.Error("Next/Prev on an empty queue should return nil")
	}
}

func TestNewQueue_DropsDuplicates(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3", "/a.mp3")...)

	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
	if currentPath(q) != "/a.mp3" {
		t.Errorf("Current() = %q, want /a.mp3", currentPath(q))
	}
}

func TestQueue_NextWraps(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)

	want := []string{"/b.mp3", "/c.mp3", "/a.mp3", "/b.mp3"}
	for i, w := range want {
		if got := q.Next(); got == nil || got.Path != w {
			t.Fatalf("step %d: Next() = %v, want %s", i, got, w)
		}
	}
}

func TestQueue_PrevWraps(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)

	want := []string{"/c.mp3", "/b.mp3", "/a.mp3", "/c.mp3"}
	for i, w := range want {
		if got := q.Prev(); got == nil || got.Path != w {
			t.Fatalf("step %d: Prev() = %v, want %s", i, got, w)
		}
	}
}

func TestQueue_SingleTrackLoops(t *testing.T) {
	q := NewQueue(tracks("/a.mp3")...)

	if got := q.Next(); got == nil || got.Path != "/a.mp3" {
		t.Errorf("Next() = %v, want /a.mp3", got)
	}
	if got := q.Prev(); got == nil || got.Path != "/a.mp3" {
		t.Errorf("Prev() = %v, want /a.mp3", got)
	}
}

func TestQueue_Following(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)

	if got := q.Following(); got.Path != "/b.mp3" {
		t.Errorf("repeat off: Following() = %s, want /b.mp3", got.Path)
	}

	q.SetRepeat(true)
	if got := q.Following(); got.Path != "/b.mp3" {
		t.Errorf("repeat on: Following() = %s, want /b.mp3", got.Path)
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("repeat moved the cursor to %d", q.CurrentIndex())
	}
}

func TestQueue_ToggleRepeat(t *testing.T) {
	q := NewQueue()

	if q.Repeat() {
		t.Error("repeat should start off")
	}
	if !q.ToggleRepeat() || !q.Repeat() {
		t.Error("ToggleRepeat() should turn repeat on")
	}
	if q.ToggleRepeat() {
		t.Error("second ToggleRepeat() should turn repeat off")
	}
}

func TestQueue_JumpTo(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"valid", 1, 1},
		{"last", 2, 2},
		{"past end clamps", 7, 2},
		{"negative clamps", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)
			q.JumpTo(tt.index)
			if q.CurrentIndex() != tt.want {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.want)
			}
		})
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		remove    int
		wantIndex int
		wantPath  string
	}{
		{"remove before current", 2, 0, 1, "/c.mp3"},
		{"remove current middle", 1, 1, 1, "/c.mp3"},
		{"remove current last", 2, 2, 1, "/b.mp3"},
		{"remove after current", 0, 2, 0, "/a.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)
			q.JumpTo(tt.current)

			if !q.RemoveAt(tt.remove) {
				t.Fatal("RemoveAt should return true")
			}
			if q.CurrentIndex() != tt.wantIndex {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantIndex)
			}
			if currentPath(q) != tt.wantPath {
				t.Errorf("Current() = %q, want %q", currentPath(q), tt.wantPath)
			}
		})
	}
}

func TestQueue_RemoveAt_Invalid(t *testing.T) {
	q := NewQueue(tracks("/a.mp3")...)

	if q.RemoveAt(5) || q.RemoveAt(-1) {
		t.Error("RemoveAt out of range should return false")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestQueue_RemoveCurrentUntilEmpty(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3", "/c.mp3")...)
	q.JumpTo(1)

	for q.Len() > 0 {
		n := q.Len()
		if !q.RemoveCurrent() {
			t.Fatalf("RemoveCurrent() = false with %d tracks", n)
		}
		if q.Len() > 0 && (q.CurrentIndex() < 0 || q.CurrentIndex() >= q.Len()) {
			t.Fatalf("CurrentIndex() = %d out of range for %d tracks", q.CurrentIndex(), q.Len())
		}
	}

	if !q.IsEmpty() || q.Current() != nil || q.CurrentIndex() != 0 {
		t.Errorf("emptied queue: current=%v index=%d", q.Current(), q.CurrentIndex())
	}
	if q.RemoveCurrent() {
		t.Error("RemoveCurrent() on an empty queue should return false")
	}
}

func TestQueue_AddKeepsCursor(t *testing.T) {
	q := NewQueue(tracks("/a.mp3", "/b.mp3")...)
	q.JumpTo(1)

	if n := q.Add(tracks("/c.mp3", "/a.mp3")...); n != 1 {
		t.Errorf("Add() = %d, want 1", n)
	}
	if q.CurrentIndex() != 1 || q.Len() != 3 {
		t.Errorf("after Add: index=%d len=%d", q.CurrentIndex(), q.Len())
	}
}
