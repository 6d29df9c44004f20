// Package posts provides a client for the feed's posts API.
package posts

import (
	"time"

	"github.com/llehouerou/soundfeed/internal/playback"
)

// Author is the public profile attached to a post.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Banner string `json:"banner"`
}

// Post is a published track as returned by the API.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       Author    `json:"author"`
	AudioURL     string    `json:"audioUrl"`
	FreeDownload bool      `json:"freeDownload"`
	Genres       []string  `json:"genres"`
	Features     []string  `json:"features"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	Downloads    int       `json:"downloads"`
	Liked        bool      `json:"liked"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Track copies the playable fields of the post. Slices are cloned so the
// playback core never shares memory with list data.
func (p Post) Track() playback.Track {
	return playback.Track{
		ID:    p.ID,
		Title: p.Title,
		Author: playback.Author{
			ID:     p.Author.ID,
			Name:   p.Author.Name,
			Avatar: p.Author.Avatar,
			Banner: p.Author.Banner,
		},
		Source:       p.AudioURL,
		FreeDownload: p.FreeDownload,
		Genres:       append([]string(nil), p.Genres...),
		Features:     append([]string(nil), p.Features...),
		Views:        p.Views,
		Comments:     p.Comments,
		Downloads:    p.Downloads,
	}
}

// Page is one page of a paginated listing. Pages are 1-based.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

// Activity is one view, like or download of a post.
type Activity struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a text comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Analytics holds activity totals for a post.
type Analytics struct {
	Views     int
	Likes     int
	Comments  int
	Downloads int
}
