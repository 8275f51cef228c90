package controller

import (
	"net/http"
	"slices"

	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

type ThreadsList struct {
	PopulateCmd command.Command[command.Empty, command.Empty]
	Threads     datasources.LocalThreadReader
	Users       datasources.LocalUserReader
}

type ThreadsListResponse struct {
	Data ThreadsListData `json:"data"`
}

type ThreadsListData struct {
	Threads []domain.Thread `json:"threads"`
	Users   []domain.User   `json:"users"`
	// Total counts threads matching the category filter before paging.
	Total int `json:"total"`
}

// ServeHTTP refreshes threads and users from the forum unless cached=true is given,
// then returns the local copy, optionally filtered by category and paged.
func (c ThreadsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logger := domain.LoggerFromContext(r.Context())

	page, paged, err := parsePageRequest(q)
	if err != nil {
		logger.WarnContext(r.Context(), "invalid pagination", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if q.Get("cached") != boolTrue {
		if _, err := c.PopulateCmd.Execute(r.Context(), command.Empty{}); err != nil {
			writeCommandError(w, r, err, "unable to populate threads and users")
			return
		}
	}

	threads := c.Threads.Threads()
	if category := q.Get("category"); category != "" {
		threads = slices.DeleteFunc(threads, func(t domain.Thread) bool {
			return t.Category != category
		})
	}

	total := len(threads)
	if paged {
		threads = paginate(threads, page)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, ThreadsListResponse{
		Data: ThreadsListData{
			Threads: threads,
			Users:   c.Users.Users(),
			Total:   total,
		},
	})
}
