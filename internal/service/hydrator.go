package service

import (
	"context"
	"errors"

	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// NewHydrator returns the hook run when a stored session is first used. It
// silently re-authenticates sessions that carry an auth marker: a rejected
// credential signs the session out, while a store failure keeps the cached
// account so the visitor stays signed in offline.
func NewHydrator(auth Authenticator, logger zerolog.Logger) session.HydrateFunc {
	logger = logger.With().Str("component", "hydrator").Logger()

	return func(ctx context.Context, st *session.State) {
		if st.Auth == nil {
			return
		}

		user, err := auth.Reauthenticate(ctx, st.Auth.Phone, st.Auth.Credential)
		switch {
		case err == nil:
			st.User = &user
			refreshStage(st)
		case errors.Is(err, model.ErrInvalidCredentials):
			logger.Info().Str("session_id", st.ID).Msg("stored credential rejected, signing out")
			st.SignOut()
		default:
			logger.Warn().Err(err).Str("session_id", st.ID).Msg("re-authentication failed, keeping cached account")
		}
	}
}
