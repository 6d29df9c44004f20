package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/errmsg"
	"github.com/llehouerou/soundfeed/internal/keymap"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/ui/playerbar"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Popup != nil {
		var cmd tea.Cmd
		m.Popup, cmd = m.Popup.Update(msg)
		return m, cmd
	}

	switch action := m.keys.Resolve(msg.String()); action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Popup = newHelpPopup()
		return m, nil
	case keymap.ActionSwitchTab:
		return m.switchTab()
	case keymap.ActionReload:
		return m.loadPage(m.list().Page)
	case keymap.ActionNextPage:
		if l := m.list(); l.Page < l.TotalPages {
			return m.loadPage(l.Page + 1)
		}
		return m, nil
	case keymap.ActionPrevPage:
		if l := m.list(); l.Page > 1 {
			return m.loadPage(l.Page - 1)
		}
		return m, nil
	case keymap.ActionMoveUp:
		return m.moveCursor(-1)
	case keymap.ActionMoveDown:
		return m.moveCursor(1)
	case keymap.ActionPlay:
		return m.playSelected()
	case keymap.ActionLike, keymap.ActionComment, keymap.ActionAnalytics, keymap.ActionDownload:
		return m.handlePostAction(action)
	case keymap.ActionPlayPause, keymap.ActionStop, keymap.ActionSeekBack, keymap.ActionSeekForward,
		keymap.ActionVolumeUp, keymap.ActionVolumeDown, keymap.ActionTogglePlayerDisplay:
		return m.handlePlaybackAction(action)
	}
	return m, nil
}

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	l := m.list()
	l.move(delta)
	bar, _ := m.renderPlayer()
	l.scroll(m.listHeight(bar))
	return m, nil
}

func (m Model) switchTab() (tea.Model, tea.Cmd) {
	if m.ActiveTab == TabFeed {
		m.ActiveTab = TabLiked
	} else {
		m.ActiveTab = TabFeed
	}
	if l := m.list(); !l.Loaded && !l.Loading {
		return m.loadPage(1)
	}
	return m, nil
}

func (m Model) loadPage(page int) (tea.Model, tea.Cmd) {
	l := m.list()
	if l.Loading {
		return m, nil
	}
	l.Loading = true
	return m, m.loadPageCmd(m.ActiveTab, max(page, 1))
}

func (m Model) playSelected() (tea.Model, tea.Cmd) {
	p, ok := m.list().selected()
	if !ok {
		return m, nil
	}
	return m, m.playCmd(p.Track())
}

func (m Model) handlePostAction(action keymap.Action) (tea.Model, tea.Cmd) {
	p, ok := m.list().selected()
	if !ok {
		return m, nil
	}

	switch action {
	case keymap.ActionLike:
		if p.Liked {
			m.setStatus("Already liked")
			return m, nil
		}
		return m, m.likeCmd(p.ID)
	case keymap.ActionComment:
		cp := newCommentPopup(p)
		m.Popup = cp
		return m, cp.Init()
	case keymap.ActionAnalytics:
		return m, m.analyticsCmd(p)
	case keymap.ActionDownload:
		if !p.FreeDownload {
			m.setStatus("No free download for this track")
			return m, nil
		}
		return m, m.downloadCmd(p.ID)
	}
	return m, nil
}

func (m Model) handlePlaybackAction(action keymap.Action) (tea.Model, tea.Cmd) {
	st := m.Playback.State()

	var err error
	switch action {
	case keymap.ActionPlayPause:
		if st.Status() == playback.StatusIdle {
			return m.playSelected()
		}
		err = m.Playback.TogglePlayPause()
	case keymap.ActionStop:
		err = m.Playback.StopTrack()
	case keymap.ActionSeekBack:
		err = m.seek(st.Position - m.seekStep)
	case keymap.ActionSeekForward:
		err = m.seek(st.Position + m.seekStep)
	case keymap.ActionVolumeUp:
		m.Playback.SetVolumeLevel(st.Volume + m.volumeStep)
	case keymap.ActionVolumeDown:
		m.Playback.SetVolumeLevel(st.Volume - m.volumeStep)
	case keymap.ActionTogglePlayerDisplay:
		if st.IsPlayerVisible {
			m.Playback.HidePlayer()
		} else {
			m.Playback.ShowPlayer()
		}
	}

	if err != nil && !errors.Is(err, playback.ErrClosed) {
		m.setError(errmsg.Format(playbackOp(action), err))
	}
	return m, nil
}

func playbackOp(action keymap.Action) errmsg.Op {
	switch action {
	case keymap.ActionStop:
		return errmsg.OpPlaybackStop
	case keymap.ActionSeekBack, keymap.ActionSeekForward:
		return errmsg.OpPlaybackSeek
	default:
		return errmsg.OpPlaybackStart
	}
}

// seek submits a seek and drops the error when the duration is not known yet.
func (m Model) seek(target time.Duration) error {
	if err := m.Playback.SeekTo(target); err != nil && !errors.Is(err, playback.ErrSeekIgnored) {
		return err
	}
	return nil
}

// handleMouseMsg drives the seek gesture from events on the progress bar.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popup != nil {
		return m, nil
	}

	bar, layout := m.renderPlayer()
	if bar == "" {
		m.Gesture.Cancel()
		return m, nil
	}
	x, y := msg.X, msg.Y-m.playerTop()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !layout.Hit(x, y) {
			return m, nil
		}
		m.Gesture.Begin(layout.Offset(x), layout.BarWidth, m.Playback.State().Duration)
	case tea.MouseActionMotion:
		m.Gesture.Move(layout.Offset(x))
	case tea.MouseActionRelease:
		target, ok := m.Gesture.Release(layout.Offset(x), m.Playback.State().Duration)
		if !ok {
			return m, nil
		}
		if err := m.seek(target); err != nil && !errors.Is(err, playback.ErrClosed) {
			m.setError(errmsg.Format(errmsg.OpPlaybackSeek, err))
		}
		return m, m.settleCmd()
	}
	return m, nil
}

// playerTop returns the screen row of the player bar's top border.
func (m Model) playerTop() int {
	return m.Height - playerbar.Height
}
