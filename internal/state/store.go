// Package state holds the client's local copy of forum data and is the only place vote sets change.
package state

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

var (
	_ datasources.VoteStateStore       = (*Store)(nil)
	_ datasources.ThreadReceiver       = (*Store)(nil)
	_ datasources.ThreadDetailReceiver = (*Store)(nil)
	_ datasources.UserReceiver         = (*Store)(nil)
	_ datasources.StateResetter        = (*Store)(nil)
	_ datasources.LocalThreadReader    = (*Store)(nil)
	_ datasources.LocalUserReader      = (*Store)(nil)
)

// Store owns every loaded target's vote sets.
//
// Mutations hold mu for the whole read-compute-write step, so two toggles never interleave.
// Each mutation queues its snapshot under mu, so the queue is in mutation order. Delivery
// happens after mu is released, under publishMu, and drains the queue in order; a mutation
// returns only once its own snapshot has been delivered. publishMu is never acquired while
// mu is held, so observers may read the store from inside their callback even while other
// mutations are waiting to publish.
// Observers must not mutate the store from inside their callback.
type Store struct {
	mu        sync.RWMutex
	publishMu sync.Mutex
	queueMu   sync.Mutex
	pending   []pendingPublish

	threads     []domain.Thread
	threadIndex map[string]int
	details     map[string]domain.ThreadDetail
	users       []domain.User

	observers      map[int]datasources.VoteObserver
	nextObserverID int
}

type pendingPublish struct {
	snapshot  domain.VoteSnapshot
	observers []datasources.VoteObserver
}

func New() *Store {
	return &Store{
		threadIndex: make(map[string]int),
		details:     make(map[string]domain.ThreadDetail),
		observers:   make(map[int]datasources.VoteObserver),
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(observer datasources.VoteObserver) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = observer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// ObserverFunc adapts a function to VoteObserver.
type ObserverFunc func(snapshot domain.VoteSnapshot)

func (f ObserverFunc) PublishVotes(snapshot domain.VoteSnapshot) {
	f(snapshot)
}

func (s *Store) ApplyVoteToggle(
	target domain.TargetRef, userID string, direction domain.Direction,
) (domain.VoteToggle, error) {
	toggle, err := s.applyToggle(target, userID, direction)
	if err != nil {
		return domain.VoteToggle{}, err
	}

	s.deliverPending()
	return toggle, nil
}

func (s *Store) applyToggle(
	target domain.TargetRef, userID string, direction domain.Direction,
) (domain.VoteToggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.voteSetsLocked(target)
	if err != nil {
		return domain.VoteToggle{}, err
	}

	toggle := domain.NewVoteToggle(current, userID, direction)
	s.commitLocked(target, current.Apply(toggle))
	return toggle, nil
}

// RevertVoteToggle re-applies toggle, undoing it. It reports whether another intent had moved
// the user out of toggle.To first; the toggle is re-applied either way.
func (s *Store) RevertVoteToggle(target domain.TargetRef, toggle domain.VoteToggle) (bool, error) {
	overlapped, err := s.revertToggle(target, toggle)
	if err != nil {
		return false, err
	}

	s.deliverPending()
	return overlapped, nil
}

func (s *Store) revertToggle(target domain.TargetRef, toggle domain.VoteToggle) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.voteSetsLocked(target)
	if err != nil {
		return false, err
	}

	overlapped := current.StateOf(toggle.UserID) != toggle.To
	s.commitLocked(target, current.Apply(toggle))
	return overlapped, nil
}

// commitLocked stores next for target and queues its snapshot for the current observers.
// It must be called with mu held for writing.
func (s *Store) commitLocked(target domain.TargetRef, next domain.VoteSets) {
	s.setVoteSetsLocked(target, next)

	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	observers := make([]datasources.VoteObserver, 0, len(ids))
	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}

	s.queueMu.Lock()
	s.pending = append(s.pending, pendingPublish{
		snapshot:  domain.VoteSnapshot{Target: target, Votes: next.Clone()},
		observers: observers,
	})
	s.queueMu.Unlock()
}

// deliverPending publishes queued snapshots in order until the queue is empty.
// It must be called without mu held.
func (s *Store) deliverPending() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	for {
		s.queueMu.Lock()
		if len(s.pending) == 0 {
			s.queueMu.Unlock()
			return
		}
		next := s.pending[0]
		s.pending[0] = pendingPublish{}
		s.pending = s.pending[1:]
		s.queueMu.Unlock()

		for _, o := range next.observers {
			o.PublishVotes(next.snapshot)
		}
	}
}

// VoteSets returns a copy of the target's current vote sets.
func (s *Store) VoteSets(target domain.TargetRef) (domain.VoteSets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sets, err := s.voteSetsLocked(target)
	if err != nil {
		return domain.VoteSets{}, err
	}
	return sets.Clone(), nil
}

// voteSetsLocked resolves a target. A thread may be loaded in the list, the detail, or both;
// the list copy is authoritative when present and the two are kept in step on write.
func (s *Store) voteSetsLocked(target domain.TargetRef) (domain.VoteSets, error) {
	switch target.Kind {
	case domain.TargetKindThread:
		if i, ok := s.threadIndex[target.ThreadID]; ok {
			return s.threads[i].VoteSets, nil
		}
		if d, ok := s.details[target.ThreadID]; ok {
			return d.VoteSets, nil
		}
	case domain.TargetKindComment:
		if d, ok := s.details[target.ThreadID]; ok {
			for _, c := range d.Comments {
				if c.ID == target.CommentID {
					return c.VoteSets, nil
				}
			}
		}
	default:
		return domain.VoteSets{}, fmt.Errorf("unknown target kind [%s]", target.Kind)
	}

	return domain.VoteSets{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, target)
}

func (s *Store) setVoteSetsLocked(target domain.TargetRef, sets domain.VoteSets) {
	switch target.Kind {
	case domain.TargetKindThread:
		if i, ok := s.threadIndex[target.ThreadID]; ok {
			s.threads[i].VoteSets = sets
		}
		if d, ok := s.details[target.ThreadID]; ok {
			d.VoteSets = sets.Clone()
			s.details[target.ThreadID] = d
		}
	case domain.TargetKindComment:
		d := s.details[target.ThreadID]
		comments := slices.Clone(d.Comments)
		for i := range comments {
			if comments[i].ID == target.CommentID {
				comments[i].VoteSets = sets
			}
		}
		d.Comments = comments
		s.details[target.ThreadID] = d
	}
}

// ReceiveThreads replaces the thread list.
func (s *Store) ReceiveThreads(threads []domain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threads = make([]domain.Thread, len(threads))
	s.threadIndex = make(map[string]int, len(threads))
	for i, t := range threads {
		s.threads[i] = t.Clone()
		s.threadIndex[t.ID] = i
	}
}

// AddThread puts a newly created thread at the head of the list.
func (s *Store) AddThread(thread domain.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.threadIndex[thread.ID]; exists {
		return
	}

	s.threads = append([]domain.Thread{thread.Clone()}, s.threads...)
	for i, t := range s.threads {
		s.threadIndex[t.ID] = i
	}
}

func (s *Store) Threads() []domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Thread, len(s.threads))
	for i, t := range s.threads {
		out[i] = t.Clone()
	}
	return out
}

// ReceiveThreadDetail loads or replaces a thread's detail and comments.
func (s *Store) ReceiveThreadDetail(detail domain.ThreadDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.details[detail.ID] = detail.Clone()
	if i, ok := s.threadIndex[detail.ID]; ok {
		s.threads[i].VoteSets = detail.VoteSets.Clone()
	}
}

func (s *Store) ThreadDetail(threadID string) (domain.ThreadDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.details[threadID]
	if !ok {
		return domain.ThreadDetail{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, domain.ThreadTarget(threadID))
	}
	d = d.Clone()
	if i, ok := s.threadIndex[threadID]; ok {
		d.VoteSets = s.threads[i].VoteSets.Clone()
	}
	return d, nil
}

// AddComment appends a newly created comment to a loaded thread detail.
func (s *Store) AddComment(threadID string, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.details[threadID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTargetNotFound, domain.ThreadTarget(threadID))
	}

	d.Comments = append([]domain.Comment{comment.Clone()}, d.Comments...)
	s.details[threadID] = d

	if i, ok := s.threadIndex[threadID]; ok {
		s.threads[i].TotalComments++
	}
	return nil
}

func (s *Store) ReceiveUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.Clone(users)
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.users)
}

// Reset evicts all targets and users. Observers stay subscribed.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threads = nil
	s.threadIndex = make(map[string]int)
	s.details = make(map[string]domain.ThreadDetail)
	s.users = nil
}
