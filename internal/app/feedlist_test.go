package app

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/posts"
	"github.com/llehouerou/soundfeed/internal/ui/testutil"
)

func listOf(n int) feedList {
	var l feedList
	items := make([]posts.Post, n)
	for i := range items {
		items[i] = posts.Post{ID: fmt.Sprintf("p%d", i), Title: fmt.Sprintf("Track %02d", i)}
	}
	l.setPage(posts.Page[posts.Post]{Items: items, Page: 1, TotalPages: 1, Total: n})
	return l
}

func TestFeedList_ScrollFollowsCursor(t *testing.T) {
	l := listOf(10)

	for range 6 {
		l.move(1)
		l.scroll(4)
	}
	if l.Cursor != 6 || l.Offset != 3 {
		t.Errorf("cursor/offset = %d/%d, want 6/3", l.Cursor, l.Offset)
	}

	for range 5 {
		l.move(-1)
		l.scroll(4)
	}
	if l.Cursor != 1 || l.Offset != 1 {
		t.Errorf("cursor/offset = %d/%d, want 1/1", l.Cursor, l.Offset)
	}
}

func TestFeedList_RenderHeightAndWidth(t *testing.T) {
	// ASCII icons keep cell widths unambiguous.
	icons.Init("none")
	t.Cleanup(func() { icons.Init("unicode") })

	l := listOf(3)
	out := l.render(50, 5, "p1")

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("line %d width = %d, want 50", i, w)
		}
	}
	if !testutil.ContainsLine(out, "Track 01") {
		t.Error("missing row for Track 01")
	}
}

func TestFeedList_EmptyAndLoading(t *testing.T) {
	var l feedList
	if !strings.Contains(l.render(30, 2, ""), "Loading") {
		t.Error("unloaded list should say loading")
	}
	l.setPage(posts.Page[posts.Post]{})
	if !strings.Contains(l.render(30, 2, ""), "Nothing here yet") {
		t.Error("empty list should say so")
	}
	if _, ok := l.selected(); ok {
		t.Error("empty list has no selection")
	}
	l.move(1)
	if l.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", l.Cursor)
	}
}

func TestFeedList_UpdateByID(t *testing.T) {
	l := listOf(3)
	l.update("p2", func(p *posts.Post) { p.Likes = 7 })
	if l.Posts[2].Likes != 7 {
		t.Errorf("Likes = %d, want 7", l.Posts[2].Likes)
	}
}
