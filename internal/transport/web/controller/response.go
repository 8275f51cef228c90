package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/forum-vote-sync/internal/datasources/forumapi"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

const maxRequestBytes = 64 * 1024

const boolTrue = "true"

// errorResponse is the JSON body sent with every non-2xx response that carries a message.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(dst); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to parse request body", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

// writeCommandError maps a command failure onto a status code, logging it under msg.
func writeCommandError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var voteFailure *domain.RemoteVoteFailure
	var apiErr *forumapi.APIError
	switch {
	case errors.As(err, &voteFailure):
		logger.WarnContext(ctx, msg, "error", err)
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Message: voteFailure.Message()})
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		logger.WarnContext(ctx, msg, "error", err)
		writeJSON(w, r, apiErr.StatusCode, errorResponse{Message: apiErr.Message})
	case errors.Is(err, domain.ErrNotAuthenticated):
		logger.WarnContext(ctx, msg, "error", err)
		writeJSON(w, r, http.StatusUnauthorized, errorResponse{Message: "Not logged in"})
	case errors.Is(err, domain.ErrTargetNotFound):
		logger.WarnContext(ctx, msg, "error", err)
		writeJSON(w, r, http.StatusNotFound, errorResponse{Message: "Not found"})
	default:
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
