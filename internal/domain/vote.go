package domain

import (
	"fmt"
	"slices"
)

// TargetKind identifies which collection a voted-on target belongs to.
type TargetKind string

const (
	TargetKindThread  TargetKind = "thread"
	TargetKindComment TargetKind = "comment"
)

// TargetRef is the composite key of a votable target.
// CommentID is only set for comments.
type TargetRef struct {
	Kind      TargetKind `json:"kind"`
	ThreadID  string     `json:"thread_id"`
	CommentID string     `json:"comment_id,omitempty"`
}

func ThreadTarget(threadID string) TargetRef {
	return TargetRef{Kind: TargetKindThread, ThreadID: threadID}
}

func CommentTarget(threadID, commentID string) TargetRef {
	return TargetRef{Kind: TargetKindComment, ThreadID: threadID, CommentID: commentID}
}

func (r TargetRef) String() string {
	if r.Kind == TargetKindComment {
		return fmt.Sprintf("comment:%s/%s", r.ThreadID, r.CommentID)
	}
	return fmt.Sprintf("thread:%s", r.ThreadID)
}

// Direction is the user's toggle intent.
type Direction string

const (
	DirectionLike    Direction = "like"
	DirectionDislike Direction = "dislike"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionLike, DirectionDislike:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unrecognised vote direction [%s]", s)
	}
}

// VoteState is a user's standing on a target, derived from set membership.
type VoteState string

const (
	VoteStateNone     VoteState = "none"
	VoteStateLiked    VoteState = "liked"
	VoteStateDisliked VoteState = "disliked"
)

// VoteOperation is one of the three mutually exclusive remote vote calls.
type VoteOperation string

const (
	VoteOperationUp      VoteOperation = "up-vote"
	VoteOperationDown    VoteOperation = "down-vote"
	VoteOperationNeutral VoteOperation = "neutral-vote"
)

// VoteSets holds the user ids that have up-voted and down-voted a target.
// Methods never mutate the receiver's slices.
type VoteSets struct {
	UpVotesBy   []string `json:"upVotesBy"`
	DownVotesBy []string `json:"downVotesBy"`
}

func (s VoteSets) StateOf(userID string) VoteState {
	switch {
	case slices.Contains(s.UpVotesBy, userID):
		return VoteStateLiked
	case slices.Contains(s.DownVotesBy, userID):
		return VoteStateDisliked
	default:
		return VoteStateNone
	}
}

// WithState returns a copy of the sets in which userID is in exactly the set named by state.
func (s VoteSets) WithState(userID string, state VoteState) VoteSets {
	next := VoteSets{
		UpVotesBy:   without(s.UpVotesBy, userID),
		DownVotesBy: without(s.DownVotesBy, userID),
	}
	switch state {
	case VoteStateLiked:
		next.UpVotesBy = append(next.UpVotesBy, userID)
	case VoteStateDisliked:
		next.DownVotesBy = append(next.DownVotesBy, userID)
	}
	return next
}

// Apply swaps the toggle's user between the From and To states.
// Any other state is left untouched, which makes Apply its own inverse.
func (s VoteSets) Apply(t VoteToggle) VoteSets {
	switch s.StateOf(t.UserID) {
	case t.From:
		return s.WithState(t.UserID, t.To)
	case t.To:
		return s.WithState(t.UserID, t.From)
	default:
		return s.Clone()
	}
}

func (s VoteSets) Clone() VoteSets {
	return VoteSets{
		UpVotesBy:   slices.Clone(s.UpVotesBy),
		DownVotesBy: slices.Clone(s.DownVotesBy),
	}
}

// Equal compares the sets ignoring order.
func (s VoteSets) Equal(o VoteSets) bool {
	return sameMembers(s.UpVotesBy, o.UpVotesBy) && sameMembers(s.DownVotesBy, o.DownVotesBy)
}

// VoteToggle is the transition produced by one intent on one target.
type VoteToggle struct {
	UserID    string    `json:"user_id"`
	Direction Direction `json:"direction"`
	From      VoteState `json:"from"`
	To        VoteState `json:"to"`
}

// NewVoteToggle computes the transition for direction given the current sets.
//
//	like:    none -> liked, liked -> none, disliked -> liked
//	dislike: none -> disliked, disliked -> none, liked -> disliked
func NewVoteToggle(sets VoteSets, userID string, direction Direction) VoteToggle {
	from := sets.StateOf(userID)

	target := VoteStateLiked
	if direction == DirectionDislike {
		target = VoteStateDisliked
	}

	to := target
	if from == target {
		to = VoteStateNone
	}

	return VoteToggle{
		UserID:    userID,
		Direction: direction,
		From:      from,
		To:        to,
	}
}

// RemoteOperation is the gateway call that makes the server agree with the toggle.
func (t VoteToggle) RemoteOperation() VoteOperation {
	switch t.To {
	case VoteStateLiked:
		return VoteOperationUp
	case VoteStateDisliked:
		return VoteOperationDown
	default:
		return VoteOperationNeutral
	}
}

// VoteSnapshot is what observers receive after every vote mutation.
type VoteSnapshot struct {
	Target TargetRef `json:"target"`
	Votes  VoteSets  `json:"votes"`
}

func without(ids []string, userID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}
