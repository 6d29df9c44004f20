package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/soundfeed/internal/keymap"
	"github.com/llehouerou/soundfeed/internal/posts"
	"github.com/llehouerou/soundfeed/internal/ui/popup"
	"github.com/llehouerou/soundfeed/internal/ui/render"
)

const commentMaxLength = 500

var popupKeys = keymap.ForContexts("popup")

// infoPopup shows static text until dismissed.
type infoPopup struct {
	dialog popup.Dialog
}

func (p infoPopup) Init() tea.Cmd { return nil }

func (p infoPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch popupKeys.Resolve(key.String()) {
		case keymap.ActionConfirm, keymap.ActionCancel:
			return p, popup.Close()
		}
		if key.String() == "q" {
			return p, popup.Close()
		}
	}
	return p, nil
}

func (p infoPopup) View(width, height int) string {
	return p.dialog.Render(width, height)
}

func newAnalyticsPopup(title string, a posts.Analytics) infoPopup {
	rows := []struct {
		label string
		n     int
	}{
		{"Views", a.Views},
		{"Likes", a.Likes},
		{"Comments", a.Comments},
		{"Downloads", a.Downloads},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %8s", r.label, humanize.Comma(int64(r.n))))
	}
	return infoPopup{dialog: popup.Dialog{
		Title:   "Analytics · " + render.Sanitize(title),
		Content: strings.Join(lines, "\n"),
		Footer:  "esc close",
	}}
}

func newHelpPopup() infoPopup {
	var lines []string
	for _, ctx := range []string{"global", "feed", "playback"} {
		for _, b := range keymap.ByContext(ctx) {
			keys := make([]string, 0, len(b.Keys))
			for _, k := range b.Keys {
				if k == " " {
					continue
				}
				keys = append(keys, k)
			}
			lines = append(lines, fmt.Sprintf("%-14s %s", strings.Join(keys, "/"), b.Description))
		}
	}
	lines = append(lines, fmt.Sprintf("%-14s %s", "mouse", "Click or drag the progress bar to seek"))
	return infoPopup{dialog: popup.Dialog{
		Title:   "Keys",
		Content: strings.Join(lines, "\n"),
		Footer:  "esc close",
	}}
}

// commentPopup prompts for a comment on a post.
type commentPopup struct {
	postID string
	title  string
	input  textinput.Model
}

func newCommentPopup(p posts.Post) commentPopup {
	in := textinput.New()
	in.Placeholder = "Say something nice"
	in.CharLimit = commentMaxLength
	in.Width = 44
	in.Prompt = "> "
	in.Focus()
	return commentPopup{postID: p.ID, title: p.Title, input: in}
}

func (p commentPopup) Init() tea.Cmd { return textinput.Blink }

func (p commentPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch popupKeys.Resolve(key.String()) {
		case keymap.ActionCancel:
			return p, popup.Close()
		case keymap.ActionConfirm:
			text := strings.TrimSpace(p.input.Value())
			if text == "" {
				return p, nil
			}
			id := p.postID
			return p, func() tea.Msg {
				return CommentSubmitMsg{PostID: id, Text: text}
			}
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p commentPopup) View(width, height int) string {
	return popup.Dialog{
		Title:   "Comment · " + render.Sanitize(p.title),
		Content: p.input.View(),
		Footer:  "enter send · esc cancel",
		Width:   48,
	}.Render(width, height)
}
