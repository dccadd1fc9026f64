package playlist

// PlayingQueue wraps a Playlist with a playback cursor and the repeat flag.
//
// The cursor is always a valid index while the queue is non-empty and 0 once
// the last track has been removed. Next and Prev wrap around both ends, so a
// single-track queue loops on itself.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int
	repeat       bool
}

// NewQueue creates a queue over the given tracks, positioned on the first.
func NewQueue(tracks ...Track) *PlayingQueue {
	q := &PlayingQueue{playlist: NewPlaylist()}
	q.playlist.Add(tracks...)
	return q
}

// Current returns the track under the cursor, or nil if the queue is empty.
func (q *PlayingQueue) Current() *Track {
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the cursor position.
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Next moves the cursor forward, wrapping to the first track after the last.
func (q *PlayingQueue) Next() *Track {
	if q.IsEmpty() {
		return nil
	}
	if q.currentIndex >= q.playlist.Len()-1 {
		q.currentIndex = 0
	} else {
		q.currentIndex++
	}
	return q.Current()
}

// Prev moves the cursor backward, wrapping to the last track before the first.
func (q *PlayingQueue) Prev() *Track {
	if q.IsEmpty() {
		return nil
	}
	if q.currentIndex == 0 {
		q.currentIndex = q.playlist.Len() - 1
	} else {
		q.currentIndex--
	}
	return q.Current()
}

// Following returns the track to play once the current one ends: the same
// track when repeat is on, the next one otherwise.
func (q *PlayingQueue) Following() *Track {
	if q.repeat {
		return q.Current()
	}
	return q.Next()
}

// JumpTo moves the cursor to index, clamped to the last track.
func (q *PlayingQueue) JumpTo(index int) *Track {
	switch {
	case q.IsEmpty(), index < 0:
		q.currentIndex = 0
	case index >= q.playlist.Len():
		q.currentIndex = q.playlist.Len() - 1
	default:
		q.currentIndex = index
	}
	return q.Current()
}

// Add appends tracks to the queue without moving the cursor.
func (q *PlayingQueue) Add(tracks ...Track) int {
	return q.playlist.Add(tracks...)
}

// RemoveAt removes the track at the given index.
// Adjusts currentIndex if necessary.
func (q *PlayingQueue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	switch {
	case q.playlist.Len() == 0:
		q.currentIndex = 0
	case q.currentIndex > index:
		q.currentIndex--
	case q.currentIndex >= q.playlist.Len():
		// Removed the last track while it was current
		q.currentIndex = q.playlist.Len() - 1
	}
	return true
}

// RemoveCurrent removes the track under the cursor. The cursor then points
// to the track that followed it, or to the new last track.
func (q *PlayingQueue) RemoveCurrent() bool {
	return q.RemoveAt(q.currentIndex)
}

// Repeat reports whether the current track is replayed when it ends.
func (q *PlayingQueue) Repeat() bool {
	return q.repeat
}

// SetRepeat sets the repeat flag.
func (q *PlayingQueue) SetRepeat(repeat bool) {
	q.repeat = repeat
}

// ToggleRepeat flips the repeat flag and returns the new value.
func (q *PlayingQueue) ToggleRepeat() bool {
	q.repeat = !q.repeat
	return q.repeat
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Labels returns the display labels of all tracks in the queue.
func (q *PlayingQueue) Labels() []string {
	return q.playlist.Labels()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
