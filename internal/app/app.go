package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/datasources/forumapi"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/session"
	"github.com/jbeshir/forum-vote-sync/internal/state"
	"github.com/jbeshir/forum-vote-sync/internal/transport/web/router"
	"github.com/jbeshir/forum-vote-sync/internal/transport/web/server"
	"github.com/jbeshir/forum-vote-sync/internal/transport/websocket"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	logger := domain.LoggerFromContext(ctx)

	sess := session.New(GetEnvAsStringOrDefault("FORUM_API_TOKEN", ""))
	store := state.New()

	forum := forumapi.NewClient(
		GetEnvAsStringOrDefault("FORUM_API_BASE_URL", forumapi.DefaultBaseURL),
		sess,
		MustGetEnvAsDuration(ctx, "FORUM_API_TIMEOUT"),
		forumapi.WithRateLimit(
			MustGetEnvAsFloat(ctx, "FORUM_API_RATE_LIMIT"),
			MustGetEnvAsInt(ctx, "FORUM_API_RATE_BURST"),
		),
		forumapi.WithCircuitBreaker(
			uint32(MustGetEnvAsInt(ctx, "FORUM_API_BREAKER_FAILURES")),
			MustGetEnvAsDuration(ctx, "FORUM_API_BREAKER_TIMEOUT"),
			logger,
		),
	)

	if sess.AccessToken() != "" {
		if err := restoreSession(ctx, forum, sess); err != nil {
			return nil, fmt.Errorf("restoring session from FORUM_API_TOKEN: %w", err)
		}
	}

	hub := websocket.NewHub(logger)
	store.Subscribe(hub)

	notifier := datasources.MultiNotifier{datasources.LogNotifier{}, hub}

	loginCmd := command.NewLogin(forum, forum, sess)

	httpRouter, err := router.MakeRouter(
		router.Commands{
			ToggleVote:        command.NewToggleVote(store, forum, sess, notifier),
			AddThread:         command.NewAddThread(forum, store),
			AddComment:        command.NewAddComment(forum, store),
			Register:          command.NewRegister(forum, loginCmd),
			Login:             loginCmd,
			Logout:            command.NewLogout(sess, store),
			PopulateThreads:   command.NewPopulateThreadsAndUsers(forum, forum, store, store),
			FetchThreadDetail: command.NewFetchThreadDetail(forum, store),
			ListLeaderboards:  command.NewListLeaderboards(forum),
		},
		store,
		hub,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		router.NewSessionMiddleware(sess),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		hub,
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// restoreSession resolves the user a preconfigured token belongs to.
func restoreSession(ctx context.Context, profile datasources.OwnProfileGetter, sess *session.Session) error {
	user, err := profile.GetOwnProfile(ctx)
	if err != nil {
		return err
	}
	sess.SetAuthUser(user)

	domain.LoggerFromContext(ctx).InfoContext(ctx, "restored session", "user_id", user.ID)
	return nil
}
