package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// TrackInfo holds the tag metadata shown for a track.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Track  int
}

// ReadTrackInfo reads tag metadata from a music file. The title falls back
// to the file name when the tag has none.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var info *TrackInfo
	m, err := tag.ReadFrom(f)
	switch {
	case err == nil:
		track, _ := m.Track()
		info = &TrackInfo{
			Path:   path,
			Title:  m.Title(),
			Artist: m.Artist(),
			Album:  m.Album(),
			Track:  track,
		}
	case strings.EqualFold(filepath.Ext(path), extMP3):
		// dhowden/tag has issues with some UTF-16 encoded ID3 tags
		info, err = readID3v2(path)
	case strings.EqualFold(filepath.Ext(path), extFLAC):
		// dhowden/tag rejects FLAC files with an ID3v2 header in front
		info, err = readFLACComments(path)
	}
	if err != nil {
		return nil, err
	}

	if info.Title == "" {
		info.Title = filepath.Base(path)
	}
	return info, nil
}

func readID3v2(path string) (*TrackInfo, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	return &TrackInfo{
		Path:   path,
		Title:  id3tag.Title(),
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
	}, nil
}

func readFLACComments(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := skipID3v2(f); err != nil {
		return nil, err
	}
	file, err := flac.ParseMetadata(f)
	if err != nil {
		return nil, err
	}

	info := &TrackInfo{Path: path}
	for _, meta := range file.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		info.Title = firstComment(cmts, flacvorbis.FIELD_TITLE)
		info.Artist = firstComment(cmts, flacvorbis.FIELD_ARTIST)
		info.Album = firstComment(cmts, flacvorbis.FIELD_ALBUM)
		break
	}
	return info, nil
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmts.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}

// IsMusicFile reports whether path has an extension the player can decode.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extOGA:
		return true
	}
	return false
}
