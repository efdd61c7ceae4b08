package account

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Syncer mirrors local account changes to the store in the background.
// Local state is never rolled back when a push fails.
//
// Pushes for one account are applied in order, one at a time. Pushes that
// arrive while an update for the same account is in flight are merged, later
// values winning, and sent as a single follow-up update.
type Syncer struct {
	store   Store
	timeout time.Duration
	logger  zerolog.Logger

	mu      sync.Mutex
	pending map[string]*pendingPush
	wg      sync.WaitGroup
}

type pendingPush struct {
	fields Fields
}

// NewSyncer creates a write-behind syncer.
func NewSyncer(store Store, timeout time.Duration, logger zerolog.Logger) *Syncer {
	return &Syncer{
		store:   store,
		timeout: timeout,
		pending: make(map[string]*pendingPush),
		logger:  logger.With().Str("component", "account_sync").Logger(),
	}
}

// Push sends a partial update for the account. Accounts without an ID have
// no remote record and are skipped.
func (s *Syncer) Push(id string, fields Fields) {
	if id == "" || len(fields) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, busy := s.pending[id]; busy {
		if p.fields == nil {
			p.fields = make(Fields, len(fields))
		}
		maps.Copy(p.fields, fields)
		s.logger.Debug().Str("user_id", id).Msg("account sync queued behind in-flight update")
		return
	}

	s.pending[id] = &pendingPush{}
	s.wg.Add(1)
	go s.run(id, maps.Clone(fields))
}

// run sends updates for one account until nothing is queued for it.
func (s *Syncer) run(id string, fields Fields) {
	defer s.wg.Done()

	for {
		s.send(id, fields)

		s.mu.Lock()
		p := s.pending[id]
		if p.fields == nil {
			delete(s.pending, id)
			s.mu.Unlock()
			return
		}
		fields, p.fields = p.fields, nil
		s.mu.Unlock()
	}
}

func (s *Syncer) send(id string, fields Fields) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.Update(ctx, id, fields); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to sync account")
		return
	}
	s.logger.Debug().Str("user_id", id).Int("fields", len(fields)).Msg("account synced")
}

// Wait blocks until every pending push has finished.
func (s *Syncer) Wait() {
	s.wg.Wait()
}
