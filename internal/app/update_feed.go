package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/errmsg"
	"github.com/llehouerou/soundfeed/internal/posts"
)

var errPostRemoved = errors.New("post no longer exists")

// postError formats a failed action on a single post. A 404 means the post
// was removed since the page loaded.
func postError(op errmsg.Op, err error) string {
	if posts.IsNotFound(err) {
		return errmsg.Format(op, errPostRemoved)
	}
	return errmsg.Format(op, err)
}

// handleFeedMsg routes results of posts API calls.
func (m Model) handleFeedMsg(msg FeedMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		l := &m.Lists[msg.Tab]
		if msg.Err != nil {
			l.Loading = false
			l.Loaded = true
			op := errmsg.OpFeedLoad
			if msg.Tab == TabLiked {
				op = errmsg.OpLikedLoad
			}
			m.setError(errmsg.Format(op, msg.Err))
			return m, nil
		}
		l.setPage(msg.Page)
		return m, nil

	case LikeResultMsg:
		if msg.Err != nil {
			m.setError(postError(errmsg.OpLike, msg.Err))
			return m, nil
		}
		m.updatePost(msg.PostID, func(p *posts.Post) {
			p.Liked = true
			p.Likes++
		})
		m.setStatus("Liked")
		return m, nil

	case CommentSubmitMsg:
		m.Popup = nil
		return m, m.commentCmd(msg.PostID, msg.Text)

	case CommentResultMsg:
		if msg.Err != nil {
			m.setError(postError(errmsg.OpComment, msg.Err))
			return m, nil
		}
		m.updatePost(msg.PostID, func(p *posts.Post) { p.Comments++ })
		m.setStatus("Comment posted")
		return m, nil

	case DownloadResultMsg:
		if msg.Err != nil {
			m.setError(postError(errmsg.OpDownload, msg.Err))
			return m, nil
		}
		m.updatePost(msg.PostID, func(p *posts.Post) { p.Downloads++ })
		m.setStatus("Download registered")
		return m, nil

	case AnalyticsLoadedMsg:
		if msg.Err != nil {
			m.setError(postError(errmsg.OpAnalytics, msg.Err))
			return m, nil
		}
		m.Popup = newAnalyticsPopup(msg.Title, msg.Analytics)
		return m, nil

	case ViewRecordedMsg:
		if msg.Err != nil {
			// Views are best effort; keep the status line for user actions.
			m.logger.Warn("view not recorded", "post", msg.PostID, "error", msg.Err)
			return m, nil
		}
		if msg.Sent {
			m.updatePost(msg.PostID, func(p *posts.Post) { p.Views++ })
		}
		return m, nil
	}
	return m, nil
}

// updatePost applies fn to every listed copy of the post.
func (m *Model) updatePost(id string, fn func(*posts.Post)) {
	for i := range m.Lists {
		m.Lists[i].update(id, fn)
	}
}
