package keymap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/ui/styles"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "window", "playback", "playlist", "position"
	// Repeat bindings fire on key press and keep firing while the key is
	// held. Other bindings fire once, on key release.
	Repeat bool
}

// Bindings contains every key binding. They are not configurable.
var Bindings = []Binding{
	// Window
	{ActionQuit, []string{"esc"}, "Quit", "window", false},

	// Playback
	{ActionPrevTrack, []string{"up"}, "Previous track", "playback", false},
	{ActionNextTrack, []string{"down"}, "Next track", "playback", false},
	{ActionPlayPause, []string{"space"}, "Pause/resume", "playback", false},
	{ActionVolumeUp, []string{"+"}, "Volume up", "playback", true},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback", true},
	{ActionToggleRepeat, []string{"r"}, "Toggle repeat", "playback", false},

	// Playlist
	{ActionRemoveTrack, []string{"delete"}, "Remove current track", "playlist", false},

	// 3D position
	{ActionResetPosition, []string{"backspace"}, "Reset listener position", "position", false},
}

// MouseBinding describes a mouse gesture for documentation.
type MouseBinding struct {
	Gesture     string
	Description string
}

// Mouse lists the mouse interactions shown in the help text.
var Mouse = []MouseBinding{
	{"click seek bar", "Seek in the current track"},
	{"click volume bar", "Set volume"},
	{"click playlist row", "Play that track"},
	{"wheel over playlist", "Scroll the playlist"},
	{"click inside the pad", "Move the 3D listener"},
	{"click tab button", "Switch between spectrum and 3D position"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpText renders the key and mouse bindings as a terminal help block.
func HelpText(t *styles.Theme) string {
	s := t.S()
	var rows []string

	rows = append(rows, s.Title.Render("Keys"))
	for _, b := range Bindings {
		rows = append(rows, helpRow(s, strings.Join(b.Keys, ", "), b.Description))
	}
	rows = append(rows, "", s.Title.Render("Mouse"))
	for _, m := range Mouse {
		rows = append(rows, helpRow(s, m.Gesture, m.Description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

const helpKeyWidth = 22

func helpRow(s *styles.Styles, key, desc string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		s.Key.Width(helpKeyWidth).Render(key),
		s.Desc.Render(desc),
	)
}
