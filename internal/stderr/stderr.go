//go:build !windows

// Package stderr captures output that C libraries (ALSA, oto) write directly
// to file descriptor 2, bypassing Go's os.Stderr, and forwards it to the log.
// This keeps raw driver messages from corrupting the TUI layout.
package stderr

import (
	"log/slog"
	"os"
	"syscall"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output and logs each line at warn level.
// Must be called early in main(), before the audio device is opened.
// On error the program can continue; output just goes to the original stderr.
func Start(logger *slog.Logger) error {
	if started {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, logger.With("component", "stderr"))
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must stay visible while the TUI is running.
func WriteOriginal(msg string) {
	if started && origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for pending lines to be logged.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	<-done
	pipeRead.Close()

	started = false
}
