package datasources

import (
	"context"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// VoteStateStore is the synchronous read and mutation surface of the local vote state.
type VoteStateStore interface {
	// VoteSets returns a copy of the target's current vote sets.
	VoteSets(target domain.TargetRef) (domain.VoteSets, error)
	// ApplyVoteToggle atomically computes and applies the toggle for direction,
	// returning it with the pre-transition state recorded in From.
	ApplyVoteToggle(target domain.TargetRef, userID string, direction domain.Direction) (domain.VoteToggle, error)
	// RevertVoteToggle re-applies toggle, undoing it. It reports whether another intent
	// had moved the user out of toggle.To first.
	RevertVoteToggle(target domain.TargetRef, toggle domain.VoteToggle) (bool, error)
}

type ThreadReceiver interface {
	ReceiveThreads(threads []domain.Thread)
	AddThread(thread domain.Thread)
}

type ThreadDetailReceiver interface {
	ReceiveThreadDetail(detail domain.ThreadDetail)
	AddComment(threadID string, comment domain.Comment) error
}

type UserReceiver interface {
	ReceiveUsers(users []domain.User)
}

// LocalThreadReader reads the locally held threads, including any unconfirmed vote changes.
type LocalThreadReader interface {
	Threads() []domain.Thread
	ThreadDetail(threadID string) (domain.ThreadDetail, error)
}

type LocalUserReader interface {
	Users() []domain.User
}

// StateResetter evicts every loaded target.
type StateResetter interface {
	Reset()
}

// CurrentUserIDGetter reads the authenticated user's id; "" means nobody is logged in.
type CurrentUserIDGetter interface {
	CurrentUserID() string
}

type AccessTokenGetter interface {
	AccessToken() string
}

// SessionWriter records and clears the authenticated user.
type SessionWriter interface {
	SetAccessToken(token string)
	SetAuthUser(user domain.User)
	Clear()
}

// UserNotifier presents a human-readable failure message to the user.
type UserNotifier interface {
	NotifyUser(ctx context.Context, message string)
}

// VoteObserver receives every vote snapshot published by the local state.
type VoteObserver interface {
	PublishVotes(snapshot domain.VoteSnapshot)
}

// LogNotifier is a UserNotifier that only writes to the context logger.
type LogNotifier struct{}

var _ UserNotifier = LogNotifier{}

func (LogNotifier) NotifyUser(ctx context.Context, message string) {
	domain.LoggerFromContext(ctx).WarnContext(ctx, "user notification", "message", message)
}

// MultiNotifier fans a notification out to every notifier in order.
type MultiNotifier []UserNotifier

var _ UserNotifier = MultiNotifier{}

func (m MultiNotifier) NotifyUser(ctx context.Context, message string) {
	for _, n := range m {
		n.NotifyUser(ctx, message)
	}
}
