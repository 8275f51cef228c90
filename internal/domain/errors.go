package domain

import (
	"errors"
	"fmt"
)

// ErrTargetNotFound is returned when a vote targets a thread or comment that isn't loaded.
var ErrTargetNotFound = errors.New("vote target not loaded")

// ErrNotAuthenticated is returned when an operation needs a logged-in user and there is none.
var ErrNotAuthenticated = errors.New("no authenticated user")

// RemoteVoteFailure reports that the gateway rejected a vote, or the transport failed.
// By the time it is returned, the optimistic local change has already been rolled back.
type RemoteVoteFailure struct {
	Target     TargetRef
	Direction  Direction
	Operation  VoteOperation
	// Overlapped is true when another intent had moved the user before the rollback ran.
	Overlapped bool
	Err        error
}

func (e *RemoteVoteFailure) Error() string {
	return fmt.Sprintf("%s on %s failed: %v", e.Operation, e.Target, e.Err)
}

func (e *RemoteVoteFailure) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user after the rollback.
func (e *RemoteVoteFailure) Message() string {
	what := "thread"
	if e.Target.Kind == TargetKindComment {
		what = "comment"
	}
	return fmt.Sprintf("Unable to %s this %s: %v", e.Direction, what, e.Err)
}
