package datasources

import (
	"context"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// VoteGateway issues the three mutually exclusive remote vote calls.
// Implementations report only success or failure.
type VoteGateway interface {
	UpVote(ctx context.Context, target domain.TargetRef) error
	DownVote(ctx context.Context, target domain.TargetRef) error
	NeutralizeVote(ctx context.Context, target domain.TargetRef) error
}

type ThreadLister interface {
	ListThreads(ctx context.Context) ([]domain.Thread, error)
}

type ThreadDetailGetter interface {
	GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error)
}

type ThreadCreator interface {
	CreateThread(ctx context.Context, thread domain.NewThread) (domain.Thread, error)
}

type CommentCreator interface {
	CreateComment(ctx context.Context, threadID, content string) (domain.Comment, error)
}

type UserLister interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type LeaderboardLister interface {
	ListLeaderboards(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type AccountRegisterer interface {
	Register(ctx context.Context, registration domain.Registration) (domain.User, error)
}

// Authenticator exchanges credentials for an access token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// OwnProfileGetter fetches the user the current access token belongs to.
type OwnProfileGetter interface {
	GetOwnProfile(ctx context.Context) (domain.User, error)
}

// ForumRepository combines all remote forum operations.
type ForumRepository interface {
	VoteGateway
	ThreadLister
	ThreadDetailGetter
	ThreadCreator
	CommentCreator
	UserLister
	LeaderboardLister
	AccountRegisterer
	Authenticator
	OwnProfileGetter
}
