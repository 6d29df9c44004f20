package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/posts"
	"github.com/llehouerou/soundfeed/internal/ui/render"
	"github.com/llehouerou/soundfeed/internal/ui/styles"
)

// Tab identifies a post listing.
type Tab int

const (
	TabFeed Tab = iota
	TabLiked
)

func (t Tab) String() string {
	if t == TabLiked {
		return "Liked"
	}
	return "Feed"
}

// feedList is one page of posts with a cursor.
type feedList struct {
	Posts      []posts.Post
	Page       int
	TotalPages int
	Total      int
	Cursor     int
	Offset     int
	Loaded     bool
	Loading    bool
}

func (l *feedList) setPage(p posts.Page[posts.Post]) {
	l.Posts = p.Items
	l.Page = max(p.Page, 1)
	l.TotalPages = max(p.TotalPages, 1)
	l.Total = p.Total
	l.Cursor = 0
	l.Offset = 0
	l.Loaded = true
	l.Loading = false
}

func (l *feedList) selected() (posts.Post, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Posts) {
		return posts.Post{}, false
	}
	return l.Posts[l.Cursor], true
}

func (l *feedList) move(delta int) {
	if len(l.Posts) == 0 {
		return
	}
	l.Cursor = min(max(l.Cursor+delta, 0), len(l.Posts)-1)
}

// update applies fn to the post with id, if it is on this page.
func (l *feedList) update(id string, fn func(*posts.Post)) {
	for i := range l.Posts {
		if l.Posts[i].ID == id {
			fn(&l.Posts[i])
		}
	}
}

// scroll keeps the cursor inside a window of height rows.
func (l *feedList) scroll(height int) {
	if height <= 0 {
		return
	}
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+height {
		l.Offset = l.Cursor - height + 1
	}
	l.Offset = max(min(l.Offset, len(l.Posts)-height), 0)
}

// render draws up to height rows. playingID marks the current track.
func (l feedList) render(width, height int, playingID string) string {
	s := styles.T().S()
	if !l.Loaded {
		return fill([]string{s.Muted.Render(" Loading...")}, width, height)
	}
	if len(l.Posts) == 0 {
		return fill([]string{s.Muted.Render(" Nothing here yet")}, width, height)
	}

	offset := min(l.Offset, max(len(l.Posts)-height, 0))
	end := min(offset+height, len(l.Posts))
	rows := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		rows = append(rows, renderPostRow(l.Posts[i], width, i == l.Cursor, l.Posts[i].ID == playingID))
	}
	return fill(rows, width, height)
}

func renderPostRow(p posts.Post, width int, cursor, playing bool) string {
	s := styles.T().S()

	marker := "  "
	if playing {
		marker = icons.Play() + " "
	}

	counts := render.JoinNonEmpty("  ",
		icons.Views()+" "+humanize.Comma(int64(p.Views)),
		likeCount(p),
		icons.Comments()+" "+humanize.Comma(int64(p.Comments)),
		icons.Downloads()+" "+humanize.Comma(int64(p.Downloads)),
	)
	if !p.CreatedAt.IsZero() {
		counts += "  " + humanize.Time(p.CreatedAt)
	}

	title := render.JoinNonEmpty(" · ", p.Title, p.Author.Name)
	if len(p.Genres) > 0 {
		title += "  [" + strings.Join(p.Genres, ", ") + "]"
	}
	if p.FreeDownload {
		title += " " + icons.Free()
	}

	room := max(width-lipgloss.Width(marker)-lipgloss.Width(counts)-2, 0)
	left := marker + render.Truncate(title, room)
	line := render.TruncateAndPad(render.Row(left, counts, width-1), width)

	switch {
	case cursor:
		return s.Cursor.Render(line)
	case playing:
		return s.Playing.Render(line)
	}
	return s.Base.Render(line)
}

func likeCount(p posts.Post) string {
	n := icons.Like() + " " + humanize.Comma(int64(p.Likes))
	if p.Liked {
		return n + "*"
	}
	return n
}

func fill(rows []string, width, height int) string {
	if height <= 0 {
		return ""
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows[:height], "\n")
}
