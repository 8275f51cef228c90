// Package client provides an HTTP client for the forum vote sync service's API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/transport/web/controller"
)

// Client is an HTTP client for the forum vote sync service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &msg) == nil && msg.Message != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, msg.Message)
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// ListThreads refreshes and returns the thread list.
func (c *Client) ListThreads(ctx context.Context) (*controller.ThreadsListData, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/threads")
	if err != nil {
		return nil, err
	}

	var result controller.ThreadsListResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

// GetThread retrieves a thread with its comments.
func (c *Client) GetThread(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/threads/"+url.PathEscape(threadID))
	if err != nil {
		return nil, err
	}

	var result controller.ThreadGetResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

// ToggleVote likes or dislikes a thread or comment, or clears the vote if it was already cast.
func (c *Client) ToggleVote(
	ctx context.Context, target domain.TargetRef, direction domain.Direction,
) (*controller.VoteToggleResponse, error) {
	path := "/v1/threads/" + url.PathEscape(target.ThreadID)
	if target.Kind == domain.TargetKindComment {
		path += "/comments/" + url.PathEscape(target.CommentID)
	}
	path += "/" + string(direction)

	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return nil, err
	}

	var result controller.VoteToggleResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AddComment posts a comment on a thread.
func (c *Client) AddComment(ctx context.Context, threadID, content string) (*domain.Comment, error) {
	jsonBody, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	path := "/v1/threads/" + url.PathEscape(threadID) + "/comments"
	resp, err := c.doRequestWithBody(ctx, http.MethodPost, path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var result struct {
		Comment domain.Comment `json:"comment"`
	}
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result.Comment, nil
}

// ListLeaderboards retrieves the leaderboard.
func (c *Client) ListLeaderboards(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/leaderboards")
	if err != nil {
		return nil, err
	}

	var result controller.LeaderboardsListResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}
