// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Feed operations
	OpFeedLoad  Op = "load feed"
	OpLikedLoad Op = "load liked posts"
	OpPostLoad  Op = "load post"

	// Post interactions
	OpLike      Op = "like post"
	OpComment   Op = "post comment"
	OpView      Op = "record view"
	OpDownload  Op = "register download"
	OpAnalytics Op = "load analytics"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackStop  Op = "stop playback"

	// Local files
	OpFileLoad Op = "load file"

	// Initialization
	OpInitialize Op = "initialize application"
)

// userMessager is implemented by errors that carry a message meant for
// display, such as API errors with a server-provided reason.
type userMessager interface {
	UserMessage() string
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, describe(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, describe(err))
}

func describe(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
