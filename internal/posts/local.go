package posts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/llehouerou/soundfeed/internal/player"
)

// LocalPageSize is the number of files per page of a Local feed.
const LocalPageSize = 50

// Local is a Source over audio files on disk. Its feed lists the files in
// the order given; there are no liked posts and interactions are rejected.
type Local struct {
	posts []Post
}

// NewLocal reads tags from each path. Unreadable files are returned as an
// error naming the first failure.
func NewLocal(paths []string) (*Local, error) {
	l := &Local{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		info, err := player.ReadTrackInfo(abs)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		l.posts = append(l.posts, postFromInfo(info))
	}
	return l, nil
}

func postFromInfo(info *player.TrackInfo) Post {
	p := Post{
		ID:       "file:" + info.Path,
		Title:    info.Title,
		Author:   Author{Name: info.Artist},
		AudioURL: info.Path,
	}
	if info.Genre != "" {
		p.Genres = []string{info.Genre}
	}
	return p
}

func (l *Local) Feed(_ context.Context, page int) (Page[Post], error) {
	total := len(l.posts)
	pages := max((total+LocalPageSize-1)/LocalPageSize, 1)
	page = min(max(page, 1), pages)

	start := (page - 1) * LocalPageSize
	end := min(start+LocalPageSize, total)
	return Page[Post]{
		Items:      append([]Post(nil), l.posts[start:end]...),
		Page:       page,
		TotalPages: pages,
		Total:      total,
	}, nil
}

func (l *Local) Liked(context.Context, int) (Page[Post], error) {
	return Page[Post]{Page: 1, TotalPages: 1}, nil
}

// AddView is accepted and ignored so playback of local files proceeds
// normally.
func (l *Local) AddView(context.Context, string) error { return nil }

func (l *Local) AddLike(context.Context, string) error { return ErrReadOnly }

func (l *Local) AddComment(context.Context, string, string) (Comment, error) {
	return Comment{}, ErrReadOnly
}

func (l *Local) TrackDownload(context.Context, string, string) error { return ErrReadOnly }

func (l *Local) Analytics(context.Context, string) (Analytics, error) {
	return Analytics{}, ErrReadOnly
}
