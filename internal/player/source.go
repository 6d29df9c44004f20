package player

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"

	// defaultMaxRemoteSize bounds how much of a remote source is buffered
	// in memory.
	defaultMaxRemoteSize = 256 << 20
)

var contentTypeExt = map[string]string{
	"audio/mpeg":   extMP3,
	"audio/mp3":    extMP3,
	"audio/flac":   extFLAC,
	"audio/x-flac": extFLAC,
	"audio/wav":    extWAV,
	"audio/x-wav":  extWAV,
	"audio/wave":   extWAV,
}

var errSourceTooLarge = errors.New("source too large")

type openedSource struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	closer   io.Closer
}

func (o *openedSource) close() {
	o.streamer.Close()
	if o.closer != nil {
		o.closer.Close()
	}
}

// memFile is an in-memory ReadSeekCloser; decoders need Seek for seeking.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// IsAudioSource reports whether the extension of source is decodable.
func IsAudioSource(source string) bool {
	switch sourceExt(source) {
	case extMP3, extFLAC, extWAV:
		return true
	}
	return false
}

func (p *Player) open(source string) (*openedSource, error) {
	rc, ext, err := p.fetch(source)
	if err != nil {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(rc)
	case extFLAC:
		streamer, format, err = flac.Decode(rc)
	case extWAV:
		streamer, format, err = wav.Decode(rc)
	default:
		rc.Close()
		return nil, fmt.Errorf("unsupported format: %q", ext)
	}
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decode %s: %w", ext, err)
	}
	return &openedSource{streamer: streamer, format: format, closer: rc}, nil
}

// fetch opens a local path, file:// URI or http(s) URL and returns the
// stream with the extension used to pick a decoder.
func (p *Player) fetch(source string) (io.ReadSeekCloser, string, error) {
	u, err := url.Parse(source)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return p.fetchRemote(u)
		case "file":
			return openLocal(u.Path)
		}
	}
	return openLocal(source)
}

func openLocal(p string) (io.ReadSeekCloser, string, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, "", err
	}
	return f, strings.ToLower(filepath.Ext(p)), nil
}

func (p *Player) fetchRemote(u *url.URL) (io.ReadSeekCloser, string, error) {
	resp, err := p.httpClient.Get(u.String())
	if err != nil {
		return nil, "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxRemoteSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > p.maxRemoteSize {
		return nil, "", fmt.Errorf("%w: over %d bytes", errSourceTooLarge, p.maxRemoteSize)
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if _, ok := knownExt(ext); !ok {
		if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
			ext = contentTypeExt[mt]
		}
	}
	return memFile{bytes.NewReader(data)}, ext, nil
}

func knownExt(ext string) (string, bool) {
	switch ext {
	case extMP3, extFLAC, extWAV:
		return ext, true
	}
	return "", false
}

func sourceExt(source string) string {
	if u, err := url.Parse(source); err == nil && u.Scheme != "" {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(filepath.Ext(source))
}
