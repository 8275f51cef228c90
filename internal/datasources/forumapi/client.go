// Package forumapi is an HTTP client for the remote forum API.
package forumapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/metrics"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public forum API.
const DefaultBaseURL = "https://forum-api.dicoding.dev/v1"

var _ datasources.ForumRepository = (*Client)(nil)

// APIError is a non-2xx response from the forum API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("forum API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("forum API error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap maps statuses the rest of the client cares about onto domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrNotAuthenticated
	case http.StatusNotFound:
		return domain.ErrTargetNotFound
	default:
		return nil
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the forum API, authenticating with whatever token the session currently holds.
type Client struct {
	baseURL    string
	tokens     datasources.AccessTokenGetter
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a new API client.
func NewClient(
	baseURL string, tokens datasources.AccessTokenGetter, timeout time.Duration, opts ...Option,
) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, operation, method, path string, reqBody, result any) error {
	var body io.Reader
	if reqBody != nil {
		jsonBody, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.ForumAPIRequestsTotal.WithLabelValues(operation, "rate_limited").Inc()
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	if c.breaker == nil {
		return c.send(operation, req, result)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.send(operation, req, result)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.ForumAPIRequestsTotal.WithLabelValues(operation, "circuit_open").Inc()
		return fmt.Errorf("forum API unavailable: %w", err)
	}
	return err
}

func (c *Client) send(operation string, req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ForumAPIRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return fmt.Errorf("executing request: %w", err)
	}
	metrics.ForumAPIRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	return c.handleResponse(resp, result)
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		if errors.Is(decodeErr, io.EOF) && result == nil {
			return nil
		}
		return fmt.Errorf("decoding response: %w", decodeErr)
	}

	if result != nil {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}

	return nil
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	var data struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, "register", http.MethodPost, "/register", registration, &data); err != nil {
		return domain.User{}, err
	}
	return data.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	reqBody := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, "login", http.MethodPost, "/login", reqBody, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return data.Token, nil
}

func (c *Client) GetOwnProfile(ctx context.Context) (domain.User, error) {
	var data struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, "own_profile", http.MethodGet, "/users/me", nil, &data); err != nil {
		return domain.User{}, err
	}
	return data.User, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var data struct {
		Users []domain.User `json:"users"`
	}
	if err := c.do(ctx, "list_users", http.MethodGet, "/users", nil, &data); err != nil {
		return nil, err
	}
	return data.Users, nil
}

func (c *Client) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	var data struct {
		Threads []domain.Thread `json:"threads"`
	}
	if err := c.do(ctx, "list_threads", http.MethodGet, "/threads", nil, &data); err != nil {
		return nil, err
	}
	return data.Threads, nil
}

func (c *Client) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	var data struct {
		DetailThread domain.ThreadDetail `json:"detailThread"`
	}
	if err := c.do(ctx, "thread_detail", http.MethodGet, threadPath(threadID), nil, &data); err != nil {
		return domain.ThreadDetail{}, err
	}
	return data.DetailThread, nil
}

func (c *Client) CreateThread(ctx context.Context, thread domain.NewThread) (domain.Thread, error) {
	var data struct {
		Thread domain.Thread `json:"thread"`
	}
	if err := c.do(ctx, "create_thread", http.MethodPost, "/threads", thread, &data); err != nil {
		return domain.Thread{}, err
	}
	return data.Thread, nil
}

func (c *Client) CreateComment(ctx context.Context, threadID, content string) (domain.Comment, error) {
	reqBody := struct {
		Content string `json:"content"`
	}{
		Content: content,
	}

	var data struct {
		Comment domain.Comment `json:"comment"`
	}
	path := threadPath(threadID) + "/comments"
	if err := c.do(ctx, "create_comment", http.MethodPost, path, reqBody, &data); err != nil {
		return domain.Comment{}, err
	}
	return data.Comment, nil
}

func (c *Client) ListLeaderboards(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var data struct {
		Leaderboards []domain.LeaderboardEntry `json:"leaderboards"`
	}
	if err := c.do(ctx, "leaderboards", http.MethodGet, "/leaderboards", nil, &data); err != nil {
		return nil, err
	}
	return data.Leaderboards, nil
}
