package forumapi

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/metrics"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Option configures optional client behaviour.
type Option func(*Client)

// WithRateLimit caps outgoing requests. Callers wait for a token, bounded by their context.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithCircuitBreaker fails requests fast once the forum has returned consecutiveFailures
// transport errors or 5xx responses in a row, probing again after openTimeout.
// 4xx responses are the caller's fault and never trip the breaker.
func WithCircuitBreaker(consecutiveFailures uint32, openTimeout time.Duration, logger *slog.Logger) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "forum_api",
			MaxRequests: 1,
			Timeout:     openTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= consecutiveFailures
			},
			IsSuccessful: isBreakerSuccess,
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					"component", name, "from", from.String(), "to", to.String())
				metrics.ForumAPICircuitState.Set(breakerStateValue(to))
			},
		})
	}
}

func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode < 500
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
