// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global
	ActionQuit      Action = "quit"
	ActionSwitchTab Action = "switch_tab"
	ActionReload    Action = "reload"
	ActionHelp      Action = "help"

	// Feed list
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionPlay      Action = "play"
	ActionLike      Action = "like"
	ActionComment   Action = "comment"
	ActionAnalytics Action = "analytics"
	ActionDownload  Action = "download"

	// Playback
	ActionPlayPause           Action = "play_pause"
	ActionStop                Action = "stop"
	ActionSeekForward         Action = "seek_forward"
	ActionSeekBack            Action = "seek_back"
	ActionVolumeUp            Action = "volume_up"
	ActionVolumeDown          Action = "volume_down"
	ActionTogglePlayerDisplay Action = "toggle_player_display"

	// Popups
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)

// Binding maps keys to an action. Keys use tea.KeyMsg.String() names.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "feed", "playback", "popup"
}

// Bindings is the default key map.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchTab, []string{"tab"}, "Feed / Liked", "global"},
	{ActionReload, []string{"r"}, "Reload page", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	{ActionMoveUp, []string{"k", "up"}, "Move up", "feed"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "feed"},
	{ActionNextPage, []string{"n", "pgdown"}, "Next page", "feed"},
	{ActionPrevPage, []string{"p", "pgup"}, "Previous page", "feed"},
	{ActionPlay, []string{"enter"}, "Play / toggle", "feed"},
	{ActionLike, []string{"L"}, "Like", "feed"},
	{ActionComment, []string{"c"}, "Comment", "feed"},
	{ActionAnalytics, []string{"a"}, "Analytics", "feed"},
	{ActionDownload, []string{"d"}, "Register download", "feed"},

	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek forward", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionTogglePlayerDisplay, []string{"v"}, "Show/hide player", "playback"},

	{ActionConfirm, []string{"enter"}, "Confirm", "popup"},
	{ActionCancel, []string{"esc"}, "Close", "popup"},
}
