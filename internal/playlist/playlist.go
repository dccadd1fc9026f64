package playlist

import (
	"path/filepath"
	"slices"
	"time"
)

// Track represents a single track in a playlist.
type Track struct {
	Path     string // file path for playback
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// Label returns the text shown for the track in the playlist view:
// "Artist - Title" when both tags are present, the title alone, or the
// file name as a last resort.
func (t Track) Label() string {
	switch {
	case t.Title != "" && t.Artist != "":
		return t.Artist + " - " + t.Title
	case t.Title != "":
		return t.Title
	default:
		return filepath.Base(t.Path)
	}
}

// Playlist holds an ordered collection of tracks. A path appears at most once.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist, skipping paths already present.
// Returns the number of tracks added.
func (p *Playlist) Add(tracks ...Track) int {
	added := 0
	for _, t := range tracks {
		if p.Contains(t.Path) {
			continue
		}
		p.tracks = append(p.tracks, t)
		added++
	}
	return added
}

// Contains reports whether a track with the given path is in the playlist.
func (p *Playlist) Contains(path string) bool {
	return slices.ContainsFunc(p.tracks, func(t Track) bool { return t.Path == path })
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = slices.Delete(p.tracks, index, index+1)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Labels returns the display label of every track, in order.
func (p *Playlist) Labels() []string {
	labels := make([]string, len(p.tracks))
	for i, t := range p.tracks {
		labels[i] = t.Label()
	}
	return labels
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
