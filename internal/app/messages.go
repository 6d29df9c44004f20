// Package app contains the soundfeed TUI model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/posts"
)

// Message category interfaces for type-based routing in Update().

// PlaybackMessage is implemented by messages bridged from the playback service.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// FeedMessage is implemented by results of posts API calls.
type FeedMessage interface {
	tea.Msg
	feedMessage()
}

// ServiceStateChangedMsg is sent when the playback status changes.
type ServiceStateChangedMsg struct {
	Previous, Current playback.Status
	Ended             bool
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when a different track becomes current.
type ServiceTrackChangedMsg struct {
	Previous, Current *playback.Track
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent on position samples and seeks.
type ServicePositionChangedMsg struct{}

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceVisibilityChangedMsg is sent when the player is shown or hidden.
type ServiceVisibilityChangedMsg struct {
	Visible bool
}

func (ServiceVisibilityChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when an error occurs in the playback service.
type ServiceErrorMsg struct {
	Operation string
	TrackID   string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent once the service has been closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// PlayResultMsg is sent when a PlayTrack call returns.
type PlayResultMsg struct {
	PostID string
	Err    error
}

func (PlayResultMsg) playbackMessage() {}

// SettleDoneMsg asks for a redraw once a seek gesture's settle window ends.
type SettleDoneMsg struct{}

func (SettleDoneMsg) playbackMessage() {}

// PageLoadedMsg carries a page of posts for a tab.
type PageLoadedMsg struct {
	Tab  Tab
	Page posts.Page[posts.Post]
	Err  error
}

func (PageLoadedMsg) feedMessage() {}

// LikeResultMsg is sent when a like request completes.
type LikeResultMsg struct {
	PostID string
	Err    error
}

func (LikeResultMsg) feedMessage() {}

// CommentSubmitMsg is sent by the comment prompt.
type CommentSubmitMsg struct {
	PostID string
	Text   string
}

func (CommentSubmitMsg) feedMessage() {}

// CommentResultMsg is sent when a comment request completes.
type CommentResultMsg struct {
	PostID  string
	Comment posts.Comment
	Err     error
}

func (CommentResultMsg) feedMessage() {}

// DownloadResultMsg is sent when a download registration completes.
type DownloadResultMsg struct {
	PostID string
	Err    error
}

func (DownloadResultMsg) feedMessage() {}

// AnalyticsLoadedMsg carries activity totals for a post.
type AnalyticsLoadedMsg struct {
	PostID    string
	Title     string
	Analytics posts.Analytics
	Err       error
}

func (AnalyticsLoadedMsg) feedMessage() {}

// ViewRecordedMsg is sent after a view was submitted or skipped.
type ViewRecordedMsg struct {
	PostID string
	Sent   bool
	Err    error
}

func (ViewRecordedMsg) feedMessage() {}
