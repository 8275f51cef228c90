package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// PopulateThreadsAndUsers loads the thread list and the user directory concurrently.
// Nothing is received into the local state unless both fetches succeed.
//
// Concurrent executions share one in-flight refresh and its result.
type PopulateThreadsAndUsers struct {
	ThreadLister   datasources.ThreadLister
	UserLister     datasources.UserLister
	ThreadReceiver datasources.ThreadReceiver
	UserReceiver   datasources.UserReceiver

	refresh singleflight.Group
}

// NewPopulateThreadsAndUsers creates a properly initialized PopulateThreadsAndUsers command.
func NewPopulateThreadsAndUsers(
	threadLister datasources.ThreadLister,
	userLister datasources.UserLister,
	threadReceiver datasources.ThreadReceiver,
	userReceiver datasources.UserReceiver,
) *PopulateThreadsAndUsers {
	return &PopulateThreadsAndUsers{
		ThreadLister:   threadLister,
		UserLister:     userLister,
		ThreadReceiver: threadReceiver,
		UserReceiver:   userReceiver,
	}
}

func (c *PopulateThreadsAndUsers) Execute(ctx context.Context, _ Empty) (Empty, error) {
	_, err, shared := c.refresh.Do("populate", func() (any, error) {
		return nil, c.populate(ctx)
	})
	if shared {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "shared in-flight thread refresh")
	}
	return Empty{}, err
}

func (c *PopulateThreadsAndUsers) populate(ctx context.Context) error {
	var (
		threads []domain.Thread
		users   []domain.User
	)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		threads, err = c.ThreadLister.ListThreads(grpCtx)
		if err != nil {
			return fmt.Errorf("listing threads: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		var err error
		users, err = c.UserLister.ListUsers(grpCtx)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	c.UserReceiver.ReceiveUsers(users)
	c.ThreadReceiver.ReceiveThreads(threads)

	domain.LoggerFromContext(ctx).DebugContext(ctx, "populated threads and users",
		"threads", len(threads), "users", len(users))
	return nil
}
