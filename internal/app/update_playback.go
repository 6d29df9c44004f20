package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/errmsg"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/posts"
)

// handlePlaybackMsg routes playback-related messages. Service events re-arm
// the subscription watcher.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ServiceStateChangedMsg:
		if msg.Ended {
			m.setStatus("Finished")
		}
		return m, m.WatchServiceEvents()

	case ServiceTrackChangedMsg, ServicePositionChangedMsg, ServiceVisibilityChangedMsg:
		// The view reads the service state directly; only a redraw is needed.
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		return m.handleServiceError(msg)

	case ServiceClosedMsg:
		return m, nil

	case PlayResultMsg:
		return m.handlePlayResult(msg)

	case SettleDoneMsg:
		return m, nil
	}
	return m, nil
}

func (m Model) handleServiceError(msg ServiceErrorMsg) (tea.Model, tea.Cmd) {
	title := msg.TrackID
	m.updatePost(msg.TrackID, func(p *posts.Post) { title = p.Title })
	m.setError(errmsg.FormatWith(errmsg.OpPlaybackStart, title, msg.Err))
	return m, m.WatchServiceEvents()
}

func (m Model) handlePlayResult(msg PlayResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		st := m.Playback.State()
		if st.IsPlaying && st.CurrentTrack != nil && st.CurrentTrack.ID == msg.PostID {
			m.ErrorMsg = ""
			return m, m.recordViewCmd(msg.PostID)
		}
	case errors.Is(msg.Err, playback.ErrTransitionRejected):
		m.setStatus("Still loading the previous track")
	case errors.Is(msg.Err, playback.ErrLoadFailed), errors.Is(msg.Err, playback.ErrClosed):
		// Load failures arrive as ServiceErrorMsg too.
	default:
		m.setError(errmsg.Format(errmsg.OpPlaybackStart, msg.Err))
	}
	return m, nil
}
