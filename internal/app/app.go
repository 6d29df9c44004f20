package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/config"
	"github.com/llehouerou/soundfeed/internal/keymap"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/posts"
	"github.com/llehouerou/soundfeed/internal/ui/playerbar"
	"github.com/llehouerou/soundfeed/internal/ui/popup"
)

// Viewer records post views. *views.Recorder implements it.
type Viewer interface {
	Record(ctx context.Context, postID string) (bool, error)
}

// Options are the dependencies of the root model.
type Options struct {
	Config   *config.Config
	Source   posts.Source
	Playback playback.Service
	Views    Viewer // nil disables view reporting
	ClientID string // user name sent with download registrations
	Offline  bool   // local files: no liked tab
}

// Model is the root application model.
type Model struct {
	Source   posts.Source
	Playback playback.Service
	Views    Viewer
	ClientID string
	Offline  bool

	Gesture      *playerbar.SeekGesture
	settleWindow time.Duration
	seekStep     time.Duration
	volumeStep   float64

	Lists     [2]feedList
	ActiveTab Tab

	Popup     popup.Popup
	StatusMsg string
	ErrorMsg  string

	Width  int
	Height int

	keys   *keymap.Resolver
	sub    *playback.Subscription
	logger *slog.Logger
}

// New creates the root model and subscribes it to the playback service.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		d := config.Defaults()
		cfg = &d
	}
	pb := cfg.GetPlaybackConfig()
	gc := cfg.GetGestureConfig()

	return Model{
		Source:   opts.Source,
		Playback: opts.Playback,
		Views:    opts.Views,
		ClientID: opts.ClientID,
		Offline:  opts.Offline,
		Gesture: playerbar.NewSeekGesture(playerbar.GestureConfig{
			TapSlop:      gc.TapSlop,
			SettleWindow: gc.SettleWindow,
		}),
		settleWindow: gc.SettleWindow,
		seekStep:     pb.SeekStep,
		volumeStep:   pb.VolumeStep,
		Lists:        [2]feedList{{Loading: true}, {}},
		keys:         keymap.ForContexts("global", "feed", "playback"),
		sub:          opts.Playback.Subscribe(),
		logger:       slog.Default().With("component", "app"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPageCmd(TabFeed, 1), m.WatchServiceEvents())
}

func (m *Model) list() *feedList {
	return &m.Lists[m.ActiveTab]
}

// playingID returns the id of the current or loading track.
func (m Model) playingID() string {
	st := m.Playback.State()
	switch {
	case st.PendingTrack != nil:
		return st.PendingTrack.ID
	case st.CurrentTrack != nil:
		return st.CurrentTrack.ID
	}
	return ""
}

func (m *Model) setError(msg string) {
	m.ErrorMsg = msg
	m.StatusMsg = ""
	if msg != "" {
		m.logger.Warn("user-facing error", "message", msg)
	}
}

func (m *Model) setStatus(msg string) {
	m.StatusMsg = msg
	m.ErrorMsg = ""
}
