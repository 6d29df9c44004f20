package stderr

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

// forward logs every non-blank line read from r until EOF.
func forward(r io.Reader, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			logger.Warn("captured", "line", line)
		}
	}
}
