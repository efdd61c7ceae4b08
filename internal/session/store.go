package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a store holds no data for a session.
var ErrNotFound = errors.New("session not found")

// Store mirrors the persistent part of a session: its cart, account and
// auth marker.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	Delete(ctx context.Context, id string) error
}
