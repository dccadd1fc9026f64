// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Window actions
	ActionQuit Action = "quit"

	// Playback actions
	ActionPlayPause    Action = "play_pause"
	ActionNextTrack    Action = "next_track"
	ActionPrevTrack    Action = "prev_track"
	ActionToggleRepeat Action = "toggle_repeat"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"

	// Playlist actions
	ActionRemoveTrack Action = "remove_track"

	// 3D position actions
	ActionResetPosition Action = "reset_position"
)
