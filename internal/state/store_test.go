package state

import (
	"sync"
	"testing"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	s := New()
	s.ReceiveThreads([]domain.Thread{
		{
			ID:        "thread-1",
			Title:     "First",
			CreatedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
			VoteSets:  domain.VoteSets{UpVotesBy: []string{"user-2"}},
		},
		{
			ID:       "thread-2",
			Title:    "Second",
			VoteSets: domain.VoteSets{DownVotesBy: []string{"user-1"}},
		},
	})
	s.ReceiveThreadDetail(domain.ThreadDetail{
		ID:       "thread-1",
		Title:    "First",
		VoteSets: domain.VoteSets{UpVotesBy: []string{"user-2"}},
		Comments: []domain.Comment{
			{ID: "comment-1", Content: "hello", VoteSets: domain.VoteSets{UpVotesBy: []string{"user-1"}}},
		},
	})
	return s
}

func TestStore_ApplyVoteToggle(t *testing.T) {
	cases := []struct {
		name      string
		target    domain.TargetRef
		direction domain.Direction
		wantFrom  domain.VoteState
		wantTo    domain.VoteState
	}{
		{
			name:      "like_thread_from_none",
			target:    domain.ThreadTarget("thread-1"),
			direction: domain.DirectionLike,
			wantFrom:  domain.VoteStateNone,
			wantTo:    domain.VoteStateLiked,
		},
		{
			name:      "like_thread_from_disliked",
			target:    domain.ThreadTarget("thread-2"),
			direction: domain.DirectionLike,
			wantFrom:  domain.VoteStateDisliked,
			wantTo:    domain.VoteStateLiked,
		},
		{
			name:      "like_comment_from_liked",
			target:    domain.CommentTarget("thread-1", "comment-1"),
			direction: domain.DirectionLike,
			wantFrom:  domain.VoteStateLiked,
			wantTo:    domain.VoteStateNone,
		},
		{
			name:      "dislike_comment_from_liked",
			target:    domain.CommentTarget("thread-1", "comment-1"),
			direction: domain.DirectionDislike,
			wantFrom:  domain.VoteStateLiked,
			wantTo:    domain.VoteStateDisliked,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testStore()

			toggle, err := s.ApplyVoteToggle(tc.target, "user-1", tc.direction)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFrom, toggle.From)
			assert.Equal(t, tc.wantTo, toggle.To)

			sets, err := s.VoteSets(tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTo, sets.StateOf("user-1"))
		})
	}
}

func TestStore_ApplyVoteToggle_UnknownTarget(t *testing.T) {
	s := testStore()

	_, err := s.ApplyVoteToggle(domain.ThreadTarget("missing"), "user-1", domain.DirectionLike)
	require.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = s.ApplyVoteToggle(domain.CommentTarget("thread-2", "comment-1"), "user-1", domain.DirectionLike)
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestStore_RevertVoteToggle(t *testing.T) {
	for _, target := range []domain.TargetRef{
		domain.ThreadTarget("thread-1"),
		domain.ThreadTarget("thread-2"),
		domain.CommentTarget("thread-1", "comment-1"),
	} {
		for _, direction := range []domain.Direction{domain.DirectionLike, domain.DirectionDislike} {
			t.Run(target.String()+"_"+string(direction), func(t *testing.T) {
				s := testStore()
				before, err := s.VoteSets(target)
				require.NoError(t, err)

				toggle, err := s.ApplyVoteToggle(target, "user-1", direction)
				require.NoError(t, err)

				overlapped, err := s.RevertVoteToggle(target, toggle)
				require.NoError(t, err)
				assert.False(t, overlapped)

				after, err := s.VoteSets(target)
				require.NoError(t, err)
				assert.True(t, before.Equal(after), "expected %+v, got %+v", before, after)
			})
		}
	}
}

func TestStore_RevertVoteToggle_Overlapped(t *testing.T) {
	cases := []struct {
		name       string
		target     domain.TargetRef
		directions []domain.Direction
		want       domain.VoteState
	}{
		{
			// liked -> none -> liked; re-applying liked -> none gives none.
			name:       "like_twice_from_liked",
			target:     domain.CommentTarget("thread-1", "comment-1"),
			directions: []domain.Direction{domain.DirectionLike, domain.DirectionLike},
			want:       domain.VoteStateNone,
		},
		{
			// none -> liked -> none; re-applying none -> liked gives liked.
			name:       "like_twice_from_none",
			target:     domain.ThreadTarget("thread-1"),
			directions: []domain.Direction{domain.DirectionLike, domain.DirectionLike},
			want:       domain.VoteStateLiked,
		},
		{
			// disliked is neither side of none -> liked, so it stays.
			name:       "like_then_dislike",
			target:     domain.ThreadTarget("thread-1"),
			directions: []domain.Direction{domain.DirectionLike, domain.DirectionDislike},
			want:       domain.VoteStateDisliked,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testStore()

			var first domain.VoteToggle
			for i, direction := range tc.directions {
				toggle, err := s.ApplyVoteToggle(tc.target, "user-1", direction)
				require.NoError(t, err)
				if i == 0 {
					first = toggle
				}
			}

			overlapped, err := s.RevertVoteToggle(tc.target, first)
			require.NoError(t, err)
			assert.True(t, overlapped)

			sets, err := s.VoteSets(tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sets.StateOf("user-1"))
			for _, up := range sets.UpVotesBy {
				assert.NotContains(t, sets.DownVotesBy, up)
			}
		})
	}
}

func TestStore_Subscribe_PublishesInOrder(t *testing.T) {
	s := testStore()
	target := domain.ThreadTarget("thread-1")

	var got []domain.VoteState
	unsubscribe := s.Subscribe(ObserverFunc(func(snapshot domain.VoteSnapshot) {
		assert.Equal(t, target, snapshot.Target)
		got = append(got, snapshot.Votes.StateOf("user-1"))

		// Reading from inside the callback must not deadlock.
		current, err := s.VoteSets(target)
		assert.NoError(t, err)
		assert.True(t, current.Equal(snapshot.Votes))
	}))

	for _, direction := range []domain.Direction{
		domain.DirectionLike, domain.DirectionDislike, domain.DirectionDislike,
	} {
		_, err := s.ApplyVoteToggle(target, "user-1", direction)
		require.NoError(t, err)
	}

	unsubscribe()
	_, err := s.ApplyVoteToggle(target, "user-1", domain.DirectionLike)
	require.NoError(t, err)

	assert.Equal(t, []domain.VoteState{
		domain.VoteStateLiked, domain.VoteStateDisliked, domain.VoteStateNone,
	}, got)
}

func TestStore_Subscribe_PublishesOverlappedRevert(t *testing.T) {
	s := testStore()
	target := domain.ThreadTarget("thread-1")

	like, err := s.ApplyVoteToggle(target, "user-1", domain.DirectionLike)
	require.NoError(t, err)
	_, err = s.ApplyVoteToggle(target, "user-1", domain.DirectionLike)
	require.NoError(t, err)

	var got []domain.VoteState
	s.Subscribe(ObserverFunc(func(snapshot domain.VoteSnapshot) {
		got = append(got, snapshot.Votes.StateOf("user-1"))
	}))

	overlapped, err := s.RevertVoteToggle(target, like)
	require.NoError(t, err)
	assert.True(t, overlapped)
	assert.Equal(t, []domain.VoteState{domain.VoteStateLiked}, got)
}

func TestStore_Subscribe_ReadDuringConcurrentToggle(t *testing.T) {
	s := testStore()
	first := domain.ThreadTarget("thread-1")
	second := domain.ThreadTarget("thread-2")

	entered := make(chan struct{})
	release := make(chan struct{})
	readDone := make(chan error, 1)

	var mu sync.Mutex
	var delivered []domain.TargetRef
	calls := 0
	s.Subscribe(ObserverFunc(func(snapshot domain.VoteSnapshot) {
		mu.Lock()
		delivered = append(delivered, snapshot.Target)
		calls++
		isFirst := calls == 1
		mu.Unlock()
		if !isFirst {
			return
		}

		close(entered)
		<-release
		_, err := s.VoteSets(first)
		readDone <- err
	}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.ApplyVoteToggle(first, "user-1", domain.DirectionLike)
		assert.NoError(t, err)
	}()

	<-entered
	go func() {
		defer wg.Done()
		_, err := s.ApplyVoteToggle(second, "user-1", domain.DirectionLike)
		assert.NoError(t, err)
	}()

	// Give the second toggle time to reach its publish step.
	time.Sleep(50 * time.Millisecond)
	close(release)

	select {
	case err := <-readDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("observer read blocked by a concurrent toggle")
	}

	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.TargetRef{first, second}, delivered)
}

func TestStore_ConcurrentToggles_NeverDuplicateUser(t *testing.T) {
	s := testStore()
	target := domain.ThreadTarget("thread-1")

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			direction := domain.DirectionLike
			if i%3 == 0 {
				direction = domain.DirectionDislike
			}
			toggle, err := s.ApplyVoteToggle(target, "user-1", direction)
			assert.NoError(t, err)
			if i%5 == 0 {
				_, err = s.RevertVoteToggle(target, toggle)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	sets, err := s.VoteSets(target)
	require.NoError(t, err)
	for _, up := range sets.UpVotesBy {
		assert.NotContains(t, sets.DownVotesBy, up)
	}
	assert.Contains(t, sets.UpVotesBy, "user-2")
}

func TestStore_ThreadDetailSharesThreadVotes(t *testing.T) {
	s := testStore()

	_, err := s.ApplyVoteToggle(domain.ThreadTarget("thread-1"), "user-1", domain.DirectionDislike)
	require.NoError(t, err)

	detail, err := s.ThreadDetail("thread-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateDisliked, detail.StateOf("user-1"))

	threads := s.Threads()
	require.Len(t, threads, 2)
	assert.Equal(t, domain.VoteStateDisliked, threads[0].StateOf("user-1"))
}

func TestStore_AddThreadAndComment(t *testing.T) {
	s := testStore()

	s.AddThread(domain.Thread{ID: "thread-3", Title: "Third"})
	threads := s.Threads()
	require.Len(t, threads, 3)
	assert.Equal(t, "thread-3", threads[0].ID)

	_, err := s.ApplyVoteToggle(domain.ThreadTarget("thread-2"), "user-1", domain.DirectionLike)
	require.NoError(t, err, "index must still resolve after prepend")

	require.NoError(t, s.AddComment("thread-1", domain.Comment{ID: "comment-2", Content: "new"}))
	detail, err := s.ThreadDetail("thread-1")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "comment-2", detail.Comments[0].ID)
	assert.Equal(t, 1, s.Threads()[1].TotalComments)

	err = s.AddComment("thread-2", domain.Comment{ID: "comment-3"})
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestStore_Reset(t *testing.T) {
	s := testStore()
	s.ReceiveUsers([]domain.User{{ID: "user-1", Name: "One"}})

	s.Reset()

	assert.Empty(t, s.Threads())
	assert.Empty(t, s.Users())
	_, err := s.VoteSets(domain.ThreadTarget("thread-1"))
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
	_, err = s.ThreadDetail("thread-1")
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := testStore()

	threads := s.Threads()
	threads[0].UpVotesBy[0] = "tampered"

	sets, err := s.VoteSets(domain.ThreadTarget("thread-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, sets.UpVotesBy)
}
