package forumapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

func (c *Client) UpVote(ctx context.Context, target domain.TargetRef) error {
	return c.vote(ctx, target, domain.VoteOperationUp)
}

func (c *Client) DownVote(ctx context.Context, target domain.TargetRef) error {
	return c.vote(ctx, target, domain.VoteOperationDown)
}

func (c *Client) NeutralizeVote(ctx context.Context, target domain.TargetRef) error {
	return c.vote(ctx, target, domain.VoteOperationNeutral)
}

// vote ignores the response data; the local state already holds the outcome.
func (c *Client) vote(ctx context.Context, target domain.TargetRef, op domain.VoteOperation) error {
	path, err := votePath(target, op)
	if err != nil {
		return err
	}

	operation := string(target.Kind) + "_" + string(op)
	if err := c.do(ctx, operation, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("%s %s: %w", op, target, err)
	}
	return nil
}

func votePath(target domain.TargetRef, op domain.VoteOperation) (string, error) {
	switch target.Kind {
	case domain.TargetKindThread:
		return threadPath(target.ThreadID) + "/" + string(op), nil
	case domain.TargetKindComment:
		return threadPath(target.ThreadID) + "/comments/" + url.PathEscape(target.CommentID) + "/" + string(op), nil
	default:
		return "", fmt.Errorf("unknown target kind [%s]", target.Kind)
	}
}

func threadPath(threadID string) string {
	return "/threads/" + url.PathEscape(threadID)
}
