package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/transport/web/controller"
	"github.com/jbeshir/forum-vote-sync/internal/transport/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands are the operations the router exposes.
type Commands struct {
	ToggleVote        command.Command[command.ToggleVoteRequest, command.ToggleVoteResult]
	AddThread         command.Command[command.AddThreadRequest, domain.Thread]
	AddComment        command.Command[command.AddCommentRequest, domain.Comment]
	Register          command.Command[command.RegisterRequest, domain.User]
	Login             command.Command[command.LoginRequest, domain.User]
	Logout            command.Command[command.Empty, command.Empty]
	PopulateThreads   command.Command[command.Empty, command.Empty]
	FetchThreadDetail command.Command[string, domain.ThreadDetail]
	ListLeaderboards  command.Command[command.Empty, []domain.LeaderboardEntry]
}

type LocalState interface {
	datasources.LocalThreadReader
	datasources.LocalUserReader
}

func MakeRouter(
	cmds Commands,
	local LocalState,
	hub *websocket.Hub,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	cacheMaxAge time.Duration,
	sessionMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(sessionMiddleware)

	r.Handle("/v1/threads", controller.ThreadsList{
		PopulateCmd: cmds.PopulateThreads,
		Threads:     local,
		Users:       local,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/threads", requireAuthMiddleware(controller.ThreadCreate{
		AddCmd: cmds.AddThread,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/threads/{thread_id}", controller.ThreadGet{
		FetchCmd: cmds.FetchThreadDetail,
		Threads:  local,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/threads/{thread_id}/comments", requireAuthMiddleware(controller.CommentCreate{
		AddCmd: cmds.AddComment,
	})).Methods(http.MethodPost, http.MethodOptions)

	voteToggle := requireAuthMiddleware(controller.VoteToggle{ToggleCmd: cmds.ToggleVote})
	r.Handle("/v1/threads/{thread_id}/{direction:like|dislike}", voteToggle).
		Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/v1/threads/{thread_id}/comments/{comment_id}/{direction:like|dislike}", voteToggle).
		Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/register", controller.Register{
		RegisterCmd: cmds.Register,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/login", controller.Login{
		LoginCmd: cmds.Login,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/logout", controller.Logout{
		LogoutCmd: cmds.Logout,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/leaderboards", controller.LeaderboardsList{
		ListCmd:     cmds.ListLeaderboards,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/events", websocket.EventsHandler{Hub: hub}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			PopulateCmd:     cmds.PopulateThreads,
			Threads:         local,
			Users:           local,
			CacheMaxAge:     cacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
