package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

type LeaderboardsList struct {
	ListCmd     command.Command[command.Empty, []domain.LeaderboardEntry]
	CacheMaxAge time.Duration
}

type LeaderboardsListResponse struct {
	Data []domain.LeaderboardEntry `json:"data"`
}

func (c LeaderboardsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entries, err := c.ListCmd.Execute(r.Context(), command.Empty{})
	if err != nil {
		writeCommandError(w, r, err, "unable to list leaderboards")
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, http.StatusOK, LeaderboardsListResponse{Data: entries})
}
