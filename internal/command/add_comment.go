package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// AddCommentRequest is the request for the AddComment command.
type AddCommentRequest struct {
	ThreadID string
	Content  string
}

// AddComment creates a comment remotely, then inserts it into the thread detail if one is loaded.
type AddComment struct {
	Creator  datasources.CommentCreator
	Receiver datasources.ThreadDetailReceiver
}

// NewAddComment creates a properly initialized AddComment command.
func NewAddComment(creator datasources.CommentCreator, receiver datasources.ThreadDetailReceiver) *AddComment {
	return &AddComment{
		Creator:  creator,
		Receiver: receiver,
	}
}

func (c *AddComment) Execute(ctx context.Context, req AddCommentRequest) (domain.Comment, error) {
	comment, err := c.Creator.CreateComment(ctx, req.ThreadID, req.Content)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("creating comment: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	if err := c.Receiver.AddComment(req.ThreadID, comment); err != nil {
		if !errors.Is(err, domain.ErrTargetNotFound) {
			return comment, fmt.Errorf("adding comment to local state: %w", err)
		}
		// The detail was never loaded or has been evicted; the next fetch will include the comment.
		logger.DebugContext(ctx, "thread detail not loaded, skipping local insert", "thread_id", req.ThreadID)
	}

	logger.DebugContext(ctx, "added comment", "thread_id", req.ThreadID, "comment_id", comment.ID)
	return comment, nil
}
