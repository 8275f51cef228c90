package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// AddThreadRequest is the request for the AddThread command.
type AddThreadRequest struct {
	Title    string
	Body     string
	Category string
}

// AddThread creates a thread remotely and, once the server accepts it, adds it to the local list.
type AddThread struct {
	Creator  datasources.ThreadCreator
	Receiver datasources.ThreadReceiver
}

// NewAddThread creates a properly initialized AddThread command.
func NewAddThread(creator datasources.ThreadCreator, receiver datasources.ThreadReceiver) *AddThread {
	return &AddThread{
		Creator:  creator,
		Receiver: receiver,
	}
}

func (c *AddThread) Execute(ctx context.Context, req AddThreadRequest) (domain.Thread, error) {
	thread, err := c.Creator.CreateThread(ctx, domain.NewThread{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		return domain.Thread{}, fmt.Errorf("creating thread: %w", err)
	}

	c.Receiver.AddThread(thread)

	domain.LoggerFromContext(ctx).DebugContext(ctx, "added thread", "thread_id", thread.ID)
	return thread, nil
}
