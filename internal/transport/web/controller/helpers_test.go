package controller

import (
	"log/slog"
	"net/http"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

func withTestLogger(r *http.Request) *http.Request {
	ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
	return r.WithContext(ctx)
}
