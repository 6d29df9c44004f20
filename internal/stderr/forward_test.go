package stderr

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForward_LogsNonBlankLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  second line  \n"), logger)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `line="ALSA lib pcm.c: underrun"`)
	assert.Contains(t, lines[1], `line="second line"`)
	assert.Contains(t, lines[0], "level=WARN")
}

func TestForward_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	forward(strings.NewReader(""), slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Empty(t, buf.String())
}
