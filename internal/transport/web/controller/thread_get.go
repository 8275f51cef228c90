package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

type ThreadGet struct {
	FetchCmd command.Command[string, domain.ThreadDetail]
	Threads  datasources.LocalThreadReader
}

type ThreadGetResponse struct {
	Data domain.ThreadDetail `json:"data"`
}

func (c ThreadGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["thread_id"]
	ctx, _ := domain.ContextWithLogAttrs(r.Context(), "thread_id", id)
	r = r.WithContext(ctx)

	if _, err := c.FetchCmd.Execute(ctx, id); err != nil {
		writeCommandError(w, r, err, "unable to fetch thread detail")
		return
	}

	detail, err := c.Threads.ThreadDetail(id)
	if err != nil {
		writeCommandError(w, r, err, "thread detail evicted after fetch")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, ThreadGetResponse{Data: detail})
}
