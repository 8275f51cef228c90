package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// VoteToggle handles POST /v1/threads/{thread_id}/{direction} and the comment equivalent.
// The request returns once the intent is reconciled; connected event clients see the
// optimistic state before that.
type VoteToggle struct {
	ToggleCmd command.Command[command.ToggleVoteRequest, command.ToggleVoteResult]
}

type VoteToggleResponse struct {
	Target    domain.TargetRef     `json:"target"`
	Operation domain.VoteOperation `json:"operation"`
	State     domain.VoteState     `json:"state"`
	Votes     domain.VoteSets      `json:"votes"`
}

func (c VoteToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())

	direction, err := domain.ParseDirection(vars["direction"])
	if err != nil {
		logger.WarnContext(r.Context(), "invalid vote direction", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := domain.ThreadTarget(vars["thread_id"])
	if commentID, ok := vars["comment_id"]; ok {
		target = domain.CommentTarget(vars["thread_id"], commentID)
	}

	result, err := c.ToggleCmd.Execute(r.Context(), command.ToggleVoteRequest{
		Target:    target,
		Direction: direction,
	})
	if err != nil {
		writeCommandError(w, r, err, "unable to toggle vote")
		return
	}

	writeJSON(w, r, http.StatusOK, VoteToggleResponse{
		Target:    target,
		Operation: result.Operation,
		State:     result.Toggle.To,
		Votes:     result.Votes,
	})
}
