//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLoadFont,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLoadFont,
			err:      errors.New("file not found"),
			expected: "Failed to load font: file not found",
		},
		{
			name:     "config operation",
			op:       OpLoadConfig,
			err:      errors.New("invalid toml"),
			expected: "Failed to load configuration: invalid toml",
		},
		{
			name:     "playback operation",
			op:       OpOpenTrack,
			err:      errors.New("no audio device"),
			expected: "Failed to open track: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpOpenTrack,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpOpenTrack,
			context:  "song.mp3",
			err:      errors.New("unsupported format"),
			expected: "Failed to open track 'song.mp3': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpOpenTrack,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to open track: unsupported format",
		},
		{
			name:     "font with path context",
			op:       OpLoadFont,
			context:  "/usr/share/fonts/font.ttf",
			err:      errors.New("permission denied"),
			expected: "Failed to load font '/usr/share/fonts/font.ttf': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpLoadConfig, OpLoadFont, OpCollectTracks, OpRunWindow,
		OpOpenTrack,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
