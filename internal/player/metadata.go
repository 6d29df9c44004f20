package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo holds tag metadata read from a local audio file.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   int
}

// ReadTrackInfo reads tags from a local file. Files without readable tags
// get the file name (without extension) as title.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &TrackInfo{Path: path}

	m, err := tag.ReadFrom(f)
	if err == nil {
		info.Title = m.Title()
		info.Artist = m.Artist()
		info.Album = m.Album()
		info.Genre = m.Genre()
		info.Year = m.Year()
	}

	if info.Title == "" {
		base := filepath.Base(path)
		info.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return info, nil
}
