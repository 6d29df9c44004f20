package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/posts"
)

// WatchServiceEvents returns a command that waits for playback service events.
// It listens on all subscription channels and converts events to tea.Msg.
// Handlers re-arm it after each message.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current, Ended: e.Ended}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Previous: e.Previous, Current: e.Current}
		case <-sub.PositionChanged:
			return ServicePositionChangedMsg{}
		case e := <-sub.VisibilityChanged:
			return ServiceVisibilityChangedMsg{Visible: e.Visible}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, TrackID: e.TrackID, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// playCmd runs PlayTrack off the update loop since it blocks until the
// load resolves.
func (m Model) playCmd(t playback.Track) tea.Cmd {
	svc := m.Playback
	return func() tea.Msg {
		return PlayResultMsg{PostID: t.ID, Err: svc.PlayTrack(t)}
	}
}

func (m Model) loadPageCmd(tab Tab, page int) tea.Cmd {
	src := m.Source
	return func() tea.Msg {
		ctx := context.Background()
		var (
			p   posts.Page[posts.Post]
			err error
		)
		if tab == TabLiked {
			p, err = src.Liked(ctx, page)
		} else {
			p, err = src.Feed(ctx, page)
		}
		return PageLoadedMsg{Tab: tab, Page: p, Err: err}
	}
}

func (m Model) likeCmd(id string) tea.Cmd {
	src := m.Source
	return func() tea.Msg {
		return LikeResultMsg{PostID: id, Err: src.AddLike(context.Background(), id)}
	}
}

func (m Model) commentCmd(id, text string) tea.Cmd {
	src := m.Source
	return func() tea.Msg {
		c, err := src.AddComment(context.Background(), id, text)
		return CommentResultMsg{PostID: id, Comment: c, Err: err}
	}
}

func (m Model) downloadCmd(id string) tea.Cmd {
	src := m.Source
	user := m.ClientID
	return func() tea.Msg {
		return DownloadResultMsg{PostID: id, Err: src.TrackDownload(context.Background(), id, user)}
	}
}

func (m Model) analyticsCmd(p posts.Post) tea.Cmd {
	src := m.Source
	return func() tea.Msg {
		a, err := src.Analytics(context.Background(), p.ID)
		return AnalyticsLoadedMsg{PostID: p.ID, Title: p.Title, Analytics: a, Err: err}
	}
}

func (m Model) recordViewCmd(id string) tea.Cmd {
	if m.Views == nil {
		return nil
	}
	v := m.Views
	return func() tea.Msg {
		sent, err := v.Record(context.Background(), id)
		return ViewRecordedMsg{PostID: id, Sent: sent, Err: err}
	}
}

// settleCmd redraws once the seek gesture stops overriding the position.
func (m Model) settleCmd() tea.Cmd {
	return tea.Tick(m.settleWindow+10*time.Millisecond, func(time.Time) tea.Msg {
		return SettleDoneMsg{}
	})
}
