package session

import (
	"context"

	"github.com/avtoservice/admin-console/internal/domain/entities"
)

// State is the persisted session: the authenticated user plus the
// bearer token, or neither. Both fields are always written together.
type State struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// Authenticated reports whether the state carries a token
func (s State) Authenticated() bool {
	return s.Token != ""
}

// Repository persists a single session state entry
type Repository interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Clear(ctx context.Context) error
}
