package playlist

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ushis/m3u"

	"github.com/llehouerou/spectra/internal/player"
)

// ErrNoTracks is returned by Collect when no argument names a playable file.
var ErrNoTracks = errors.New("no playable file")

// FromPath creates a playlist track from a file path by reading its metadata.
func FromPath(path string) Track {
	info, err := player.ReadTrackInfo(path)
	if err != nil {
		// Fallback to basic info from filename
		return Track{
			Path:  path,
			Title: filepath.Base(path),
		}
	}

	return Track{
		Path:   path,
		Title:  info.Title,
		Artist: info.Artist,
		Album:  info.Album,
	}
}

// IsM3U reports whether path names an m3u playlist file.
func IsM3U(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".m3u" || ext == ".m3u8"
}

// Collect turns command-line arguments into tracks. Arguments that are not
// regular files are skipped, m3u playlists are expanded in place and
// duplicate paths keep their first position.
func Collect(args []string) ([]Track, error) {
	p := NewPlaylist()
	for _, arg := range args {
		if !isRegular(arg) {
			slog.Debug("skipping argument", "path", arg)
			continue
		}
		if IsM3U(arg) {
			tracks, err := readM3U(arg)
			if err != nil {
				slog.Warn("read playlist failed", "path", arg, "err", err)
				continue
			}
			p.Add(tracks...)
			continue
		}
		p.Add(FromPath(arg))
	}

	if p.Len() == 0 {
		return nil, ErrNoTracks
	}
	return p.Tracks(), nil
}

// readM3U parses an m3u file. Relative entries are resolved against the
// playlist's directory and entries that are not regular files are dropped.
func readM3U(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := m3u.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		entry := e.Path
		if entry == "" {
			continue
		}
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(dir, entry)
		}
		if !isRegular(entry) || IsM3U(entry) {
			slog.Debug("skipping playlist entry", "playlist", path, "path", entry)
			continue
		}
		t := FromPath(entry)
		if t.Title == filepath.Base(entry) && e.Title != "" {
			t.Title = e.Title
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
