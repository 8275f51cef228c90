package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoteToggle(t *testing.T) {
	cases := []struct {
		name      string
		sets      VoteSets
		direction Direction
		wantFrom  VoteState
		wantTo    VoteState
		wantOp    VoteOperation
	}{
		{
			name:      "like_from_none",
			sets:      VoteSets{},
			direction: DirectionLike,
			wantFrom:  VoteStateNone,
			wantTo:    VoteStateLiked,
			wantOp:    VoteOperationUp,
		},
		{
			name:      "like_from_liked",
			sets:      VoteSets{UpVotesBy: []string{"u1"}},
			direction: DirectionLike,
			wantFrom:  VoteStateLiked,
			wantTo:    VoteStateNone,
			wantOp:    VoteOperationNeutral,
		},
		{
			name:      "like_from_disliked",
			sets:      VoteSets{DownVotesBy: []string{"u1"}},
			direction: DirectionLike,
			wantFrom:  VoteStateDisliked,
			wantTo:    VoteStateLiked,
			wantOp:    VoteOperationUp,
		},
		{
			name:      "dislike_from_none",
			sets:      VoteSets{},
			direction: DirectionDislike,
			wantFrom:  VoteStateNone,
			wantTo:    VoteStateDisliked,
			wantOp:    VoteOperationDown,
		},
		{
			name:      "dislike_from_disliked",
			sets:      VoteSets{DownVotesBy: []string{"u1"}},
			direction: DirectionDislike,
			wantFrom:  VoteStateDisliked,
			wantTo:    VoteStateNone,
			wantOp:    VoteOperationNeutral,
		},
		{
			name:      "dislike_from_liked",
			sets:      VoteSets{UpVotesBy: []string{"u1"}},
			direction: DirectionDislike,
			wantFrom:  VoteStateLiked,
			wantTo:    VoteStateDisliked,
			wantOp:    VoteOperationDown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toggle := NewVoteToggle(tc.sets, "u1", tc.direction)
			assert.Equal(t, tc.wantFrom, toggle.From)
			assert.Equal(t, tc.wantTo, toggle.To)
			assert.Equal(t, tc.wantOp, toggle.RemoteOperation())

			applied := tc.sets.Apply(toggle)
			assert.Equal(t, tc.wantTo, applied.StateOf("u1"))
		})
	}
}

// initialStates covers every state of u1 alongside votes from other users.
func initialStates() map[string]VoteSets {
	return map[string]VoteSets{
		"none":          {UpVotesBy: []string{"u2"}, DownVotesBy: []string{"u3"}},
		"liked":         {UpVotesBy: []string{"u2", "u1"}, DownVotesBy: []string{"u3"}},
		"disliked":      {UpVotesBy: []string{"u2"}, DownVotesBy: []string{"u1", "u3"}},
		"empty":         {},
		"only_disliked": {DownVotesBy: []string{"u1"}},
	}
}

func TestVoteSets_Apply_Involution(t *testing.T) {
	for name, sets := range initialStates() {
		for _, direction := range []Direction{DirectionLike, DirectionDislike} {
			t.Run(name+"_"+string(direction), func(t *testing.T) {
				toggle := NewVoteToggle(sets, "u1", direction)

				once := sets.Apply(toggle)
				twice := once.Apply(toggle)

				assert.True(t, twice.Equal(sets), "expected %+v, got %+v", sets, twice)
				assert.Equal(t, sets.StateOf("u1"), twice.StateOf("u1"))
			})
		}
	}
}

func TestVoteSets_Apply_InvolutionForUnrelatedState(t *testing.T) {
	// A toggle computed against one state and applied to a state it doesn't mention is a no-op.
	toggle := NewVoteToggle(VoteSets{}, "u1", DirectionLike)
	sets := VoteSets{DownVotesBy: []string{"u1"}}

	once := sets.Apply(toggle)
	assert.True(t, once.Equal(sets))
	assert.True(t, once.Apply(toggle).Equal(sets))
}

func TestVoteSets_Apply_MutualExclusivity(t *testing.T) {
	for name, sets := range initialStates() {
		t.Run(name, func(t *testing.T) {
			current := sets
			sequence := []Direction{
				DirectionLike, DirectionDislike, DirectionDislike, DirectionLike,
				DirectionLike, DirectionDislike, DirectionLike,
			}
			for _, direction := range sequence {
				current = current.Apply(NewVoteToggle(current, "u1", direction))
				for _, up := range current.UpVotesBy {
					assert.NotContains(t, current.DownVotesBy, up)
				}
			}
			assert.Equal(t, sets.StateOf("u2"), current.StateOf("u2"))
			assert.Equal(t, sets.StateOf("u3"), current.StateOf("u3"))
		})
	}
}

func TestVoteSets_Apply_DoesNotMutateReceiver(t *testing.T) {
	sets := VoteSets{UpVotesBy: []string{"u1", "u2"}, DownVotesBy: []string{"u3"}}
	toggle := NewVoteToggle(sets, "u1", DirectionDislike)

	next := sets.Apply(toggle)

	assert.Equal(t, []string{"u1", "u2"}, sets.UpVotesBy)
	assert.Equal(t, []string{"u3"}, sets.DownVotesBy)
	assert.Equal(t, VoteStateDisliked, next.StateOf("u1"))
	assert.ElementsMatch(t, []string{"u2"}, next.UpVotesBy)
	assert.ElementsMatch(t, []string{"u3", "u1"}, next.DownVotesBy)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("like")
	require.NoError(t, err)
	assert.Equal(t, DirectionLike, d)

	d, err = ParseDirection("dislike")
	require.NoError(t, err)
	assert.Equal(t, DirectionDislike, d)

	_, err = ParseDirection("love")
	require.Error(t, err)
}

func TestRemoteVoteFailure_Message(t *testing.T) {
	failure := &RemoteVoteFailure{
		Target:    CommentTarget("thread-1", "comment-1"),
		Direction: DirectionDislike,
		Operation: VoteOperationDown,
		Err:       assert.AnError,
	}

	assert.Contains(t, failure.Message(), "Unable to dislike this comment")
	assert.Contains(t, failure.Error(), "down-vote on comment:thread-1/comment-1")
	assert.ErrorIs(t, failure, assert.AnError)
}
