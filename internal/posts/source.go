package posts

import (
	"context"
	"errors"
)

// ErrReadOnly is returned by sources that cannot record interactions.
var ErrReadOnly = errors.New("source is read-only")

// Source is the subset of the API the UI depends on. Client talks to the
// server; Local serves files from disk.
type Source interface {
	Feed(ctx context.Context, page int) (Page[Post], error)
	Liked(ctx context.Context, page int) (Page[Post], error)
	AddView(ctx context.Context, id string) error
	AddLike(ctx context.Context, id string) error
	AddComment(ctx context.Context, id, text string) (Comment, error)
	TrackDownload(ctx context.Context, id, userName string) error
	Analytics(ctx context.Context, id string) (Analytics, error)
}

var (
	_ Source = (*Client)(nil)
	_ Source = (*Local)(nil)
)
