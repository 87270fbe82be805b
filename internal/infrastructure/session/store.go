package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/avtoservice/admin-console/internal/domain/entities"
)

// Store is the process-wide session holder. Every consumer reads the
// same value; it changes only through Restore, Login and Logout.
type Store struct {
	mu    sync.RWMutex
	repo  Repository
	state State
	subs  []func(State)
}

// NewStore creates a session store backed by the given repository
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Restore loads a previously persisted session. It never fails: an
// absent or malformed persisted state leaves the session empty.
func (s *Store) Restore(ctx context.Context) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("discarding persisted session")
		state = State{}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.notify(state)
}

// Login sets the in-memory session and persists it. User and token are
// written together; a partial session is never stored.
func (s *Store) Login(ctx context.Context, user entities.User, token string) error {
	state := State{User: &user, Token: token}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.notify(state)

	return s.repo.Save(ctx, state)
}

// Logout clears the in-memory session and removes the persisted state
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
	s.notify(State{})

	return s.repo.Clear(ctx)
}

// Current returns the session state
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current bearer token, empty when signed out.
// It satisfies the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Subscribe registers fn to be called on every session change
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(state State) {
	s.mu.RLock()
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(state)
	}
}
