package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/metrics"
)

// ToggleVoteRequest is the request for the ToggleVote command.
type ToggleVoteRequest struct {
	Target    domain.TargetRef
	Direction domain.Direction
}

// ToggleVoteResult describes how an intent was reconciled.
type ToggleVoteResult struct {
	IntentID  string
	Toggle    domain.VoteToggle
	Operation domain.VoteOperation
	// Votes is the target's vote sets once reconciliation finished.
	Votes domain.VoteSets
}

// ToggleVote applies a like/dislike toggle optimistically, confirms it with the server,
// and rolls the local state back if the server call fails.
//
// Overlapping intents on the same target are not serialized. Each one reads, applies and
// reconciles against whatever the store holds at that moment.
type ToggleVote struct {
	Votes    datasources.VoteStateStore
	Gateway  datasources.VoteGateway
	Session  datasources.CurrentUserIDGetter
	Notifier datasources.UserNotifier
}

// NewToggleVote creates a properly initialized ToggleVote command.
func NewToggleVote(
	votes datasources.VoteStateStore,
	gateway datasources.VoteGateway,
	session datasources.CurrentUserIDGetter,
	notifier datasources.UserNotifier,
) *ToggleVote {
	return &ToggleVote{
		Votes:    votes,
		Gateway:  gateway,
		Session:  session,
		Notifier: notifier,
	}
}

// Execute runs one intent to completion. Once the remote call has started it is not
// cancelled by ctx; transport timeouts surface as an ordinary failure.
//
// On remote failure the returned error is a *domain.RemoteVoteFailure.
func (c *ToggleVote) Execute(ctx context.Context, req ToggleVoteRequest) (ToggleVoteResult, error) {
	userID := c.Session.CurrentUserID()
	if userID == "" {
		return ToggleVoteResult{}, domain.ErrNotAuthenticated
	}

	intentID := uuid.New().String()
	ctx, logger := domain.ContextWithLogAttrs(ctx,
		"intent_id", intentID,
		"target", req.Target.String(),
		"direction", string(req.Direction),
	)

	metrics.VoteIntentsTotal.WithLabelValues(string(req.Target.Kind), string(req.Direction)).Inc()

	toggle, err := c.Votes.ApplyVoteToggle(req.Target, userID, req.Direction)
	if err != nil {
		return ToggleVoteResult{}, fmt.Errorf("applying vote toggle: %w", err)
	}

	op := toggle.RemoteOperation()
	logger.DebugContext(ctx, "applied optimistic vote",
		"from", string(toggle.From), "to", string(toggle.To), "operation", string(op))

	result := ToggleVoteResult{
		IntentID:  intentID,
		Toggle:    toggle,
		Operation: op,
	}

	remoteErr := c.callGateway(context.WithoutCancel(ctx), req.Target, op)
	if remoteErr == nil {
		logger.DebugContext(ctx, "remote vote confirmed")
		result.Votes = c.currentVotes(ctx, req.Target)
		return result, nil
	}

	overlapped, err := c.Votes.RevertVoteToggle(req.Target, toggle)
	if err != nil {
		// The target was evicted while the call was in flight; nothing is left to roll back.
		logger.WarnContext(ctx, "unable to roll back vote", "error", err)
	}

	rollback := "reverted"
	if overlapped {
		rollback = "reverted_after_overlap"
	}
	metrics.VoteRollbacksTotal.WithLabelValues(string(req.Target.Kind), rollback).Inc()

	logger.WarnContext(ctx, "remote vote failed, rolled back optimistic state",
		"error", remoteErr, "operation", string(op), "rollback", rollback)

	failure := &domain.RemoteVoteFailure{
		Target:     req.Target,
		Direction:  req.Direction,
		Operation:  op,
		Overlapped: overlapped,
		Err:        remoteErr,
	}
	c.Notifier.NotifyUser(ctx, failure.Message())

	result.Votes = c.currentVotes(ctx, req.Target)
	return result, failure
}

func (c *ToggleVote) callGateway(ctx context.Context, target domain.TargetRef, op domain.VoteOperation) error {
	start := time.Now()

	var err error
	switch op {
	case domain.VoteOperationUp:
		err = c.Gateway.UpVote(ctx, target)
	case domain.VoteOperationDown:
		err = c.Gateway.DownVote(ctx, target)
	case domain.VoteOperationNeutral:
		err = c.Gateway.NeutralizeVote(ctx, target)
	default:
		err = errors.New("unknown vote operation")
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.VoteRemoteCallsTotal.WithLabelValues(string(op), status).Inc()
	metrics.VoteRemoteDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())

	return err
}

func (c *ToggleVote) currentVotes(ctx context.Context, target domain.TargetRef) domain.VoteSets {
	votes, err := c.Votes.VoteSets(target)
	if err != nil {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "target no longer loaded", "error", err)
		return domain.VoteSets{}
	}
	return votes
}
