package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// FetchThreadDetail loads a thread with its comments into the local state,
// which makes the thread's comments available as vote targets.
type FetchThreadDetail struct {
	Getter   datasources.ThreadDetailGetter
	Receiver datasources.ThreadDetailReceiver
}

// NewFetchThreadDetail creates a properly initialized FetchThreadDetail command.
func NewFetchThreadDetail(
	getter datasources.ThreadDetailGetter,
	receiver datasources.ThreadDetailReceiver,
) *FetchThreadDetail {
	return &FetchThreadDetail{
		Getter:   getter,
		Receiver: receiver,
	}
}

func (c *FetchThreadDetail) Execute(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	detail, err := c.Getter.GetThreadDetail(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, fmt.Errorf("fetching thread detail: %w", err)
	}

	c.Receiver.ReceiveThreadDetail(detail)
	return detail, nil
}

// ListLeaderboards passes the leaderboard listing through; it keeps no local state.
type ListLeaderboards struct {
	Lister datasources.LeaderboardLister
}

func NewListLeaderboards(lister datasources.LeaderboardLister) *ListLeaderboards {
	return &ListLeaderboards{Lister: lister}
}

func (c *ListLeaderboards) Execute(ctx context.Context, _ Empty) ([]domain.LeaderboardEntry, error) {
	entries, err := c.Lister.ListLeaderboards(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leaderboards: %w", err)
	}
	return entries, nil
}
