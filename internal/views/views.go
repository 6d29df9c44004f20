// Package views records post views at most once per cooldown window.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/llehouerou/soundfeed/internal/state"
)

// DefaultCooldown is the minimum time between two recorded views of a post.
const DefaultCooldown = time.Hour

const keyPrefix = "view:"

// Submitter sends a view to the server.
type Submitter interface {
	AddView(ctx context.Context, id string) error
}

// Recorder submits views and remembers when each post was last recorded.
type Recorder struct {
	mu       sync.Mutex
	store    state.Interface
	api      Submitter
	cooldown time.Duration
	logger   *slog.Logger
}

// New creates a recorder. A non-positive cooldown uses DefaultCooldown.
func New(store state.Interface, api Submitter, cooldown time.Duration) *Recorder {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Recorder{
		store:    store,
		api:      api,
		cooldown: cooldown,
		logger:   slog.Default().With("component", "views"),
	}
}

// Record submits a view of postID unless one was recorded within the
// cooldown. It reports whether a view was sent. A failed submission is not
// remembered, so the next call retries.
func (r *Recorder) Record(ctx context.Context, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if last, ok := r.lastRecorded(postID); ok && now.Sub(last) < r.cooldown {
		r.logger.Debug("view in cooldown", "post", postID, "last", last)
		return false, nil
	}

	if err := r.api.AddView(ctx, postID); err != nil {
		return false, fmt.Errorf("add view: %w", err)
	}

	if err := r.store.Set(keyPrefix+postID, now.UTC().Format(time.RFC3339)); err != nil {
		r.logger.Warn("failed to save view time", "post", postID, "error", err)
	}
	return true, nil
}

// lastRecorded returns the stored time of the last view. Unreadable or
// malformed entries count as never recorded.
func (r *Recorder) lastRecorded(postID string) (time.Time, bool) {
	v, ok, err := r.store.Get(keyPrefix + postID)
	if err != nil {
		r.logger.Warn("failed to read view time", "post", postID, "error", err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
