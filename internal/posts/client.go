package posts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 4096

// APIError is returned for any non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.Status)
	}
	return fmt.Sprintf("API returned status %d: %s", e.Status, e.Body)
}

// UserMessage returns the server-provided message when the body is a JSON
// object with a "message" field.
func (e *APIError) UserMessage() string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal([]byte(e.Body), &body) == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client provides access to the posts API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new posts API client. An empty token sends no
// Authorization header.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default().With("component", "posts"),
	}
}

// Feed returns a page of the public feed.
func (c *Client) Feed(ctx context.Context, page int) (Page[Post], error) {
	var result Page[Post]
	err := c.do(ctx, http.MethodGet, "/posts"+pageQuery(page), nil, &result)
	return result, err
}

// Liked returns a page of the posts liked by the current user.
func (c *Client) Liked(ctx context.Context, page int) (Page[Post], error) {
	var result Page[Post]
	err := c.do(ctx, http.MethodGet, "/posts/liked"+pageQuery(page), nil, &result)
	return result, err
}

// Post returns a single post.
func (c *Client) Post(ctx context.Context, id string) (Post, error) {
	var result Post
	err := c.do(ctx, http.MethodGet, postPath(id, ""), nil, &result)
	return result, err
}

// AddView records a view of the post.
func (c *Client) AddView(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, postPath(id, "views"), nil, nil)
}

// AddLike likes the post.
func (c *Client) AddLike(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, postPath(id, "likes"), nil, nil)
}

// AddComment posts a comment on the post.
func (c *Client) AddComment(ctx context.Context, id, text string) (Comment, error) {
	var result Comment
	body := map[string]string{"text": text}
	err := c.do(ctx, http.MethodPost, postPath(id, "comments"), body, &result)
	return result, err
}

// TrackDownload registers a download of the post by userName.
func (c *Client) TrackDownload(ctx context.Context, id, userName string) error {
	body := map[string]string{"userName": userName}
	return c.do(ctx, http.MethodPost, postPath(id, "downloads"), body, nil)
}

// Views returns a page of the post's views.
func (c *Client) Views(ctx context.Context, id string, page int) (Page[Activity], error) {
	return c.activity(ctx, id, "views", page)
}

// Likes returns a page of the post's likes.
func (c *Client) Likes(ctx context.Context, id string, page int) (Page[Activity], error) {
	return c.activity(ctx, id, "likes", page)
}

// Downloads returns a page of the post's downloads.
func (c *Client) Downloads(ctx context.Context, id string, page int) (Page[Activity], error) {
	return c.activity(ctx, id, "downloads", page)
}

// Comments returns a page of the post's comments.
func (c *Client) Comments(ctx context.Context, id string, page int) (Page[Comment], error) {
	var result Page[Comment]
	err := c.do(ctx, http.MethodGet, postPath(id, "comments")+pageQuery(page), nil, &result)
	return result, err
}

// Analytics collects activity totals from the first page of each listing.
func (c *Client) Analytics(ctx context.Context, id string) (Analytics, error) {
	var a Analytics

	views, err := c.Views(ctx, id, 1)
	if err != nil {
		return a, fmt.Errorf("views: %w", err)
	}
	likes, err := c.Likes(ctx, id, 1)
	if err != nil {
		return a, fmt.Errorf("likes: %w", err)
	}
	comments, err := c.Comments(ctx, id, 1)
	if err != nil {
		return a, fmt.Errorf("comments: %w", err)
	}
	downloads, err := c.Downloads(ctx, id, 1)
	if err != nil {
		return a, fmt.Errorf("downloads: %w", err)
	}

	a.Views = views.Total
	a.Likes = likes.Total
	a.Comments = comments.Total
	a.Downloads = downloads.Total
	return a, nil
}

func (c *Client) activity(ctx context.Context, id, kind string, page int) (Page[Activity], error) {
	var result Page[Activity]
	err := c.do(ctx, http.MethodGet, postPath(id, kind)+pageQuery(page), nil, &result)
	return result, err
}

// do sends a request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, body != nil)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// setHeaders sets common headers for API requests.
func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func postPath(id, sub string) string {
	p := "/posts/" + url.PathEscape(id)
	if sub != "" {
		p += "/" + sub
	}
	return p
}

func pageQuery(page int) string {
	if page < 1 {
		page = 1
	}
	return "?page=" + strconv.Itoa(page)
}
