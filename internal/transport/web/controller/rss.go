package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// RSS serves the thread list as a feed. Each item's description carries the current vote counts.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	PopulateCmd     command.Command[command.Empty, command.Empty]
	Threads         datasources.LocalThreadReader
	Users           datasources.LocalUserReader
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Forum Threads",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest threads on the forum",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	if _, err := c.PopulateCmd.Execute(r.Context(), command.Empty{}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch threads for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	names := make(map[string]string)
	for _, u := range c.Users.Users() {
		names[u.ID] = u.Name
	}

	for _, t := range c.Threads.Threads() {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          t.ID,
			IsPermaLink: "false",
			Title:       t.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/threads/" + t.ID},
			Description: fmt.Sprintf("%s (%d likes, %d dislikes, %d comments)",
				t.Category, len(t.UpVotesBy), len(t.DownVotesBy), t.TotalComments),
			Content: t.Body,
			Author: &feeds.Author{
				Name: names[t.OwnerID],
			},
			Created: t.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
