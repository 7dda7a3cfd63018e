package session

import (
	"context"
	"errors"
	"time"
)

// Resume returns the session for the current interaction. A new session is
// started when none is stored or the stored one has been idle past ttl.
// LastSeen is stamped with now either way; the caller saves the result.
func Resume(ctx context.Context, store SessionStore, ttl time.Duration, now time.Time) (s *Session, started bool, err error) {
	s, err = store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSession):
		return New(now), true, nil
	case err != nil:
		return nil, false, err
	case s.Expired(now, ttl):
		return New(now), true, nil
	}
	s.LastSeen = now
	return s, false, nil
}

// Start begins a new session. Unless force is set, it fails with
// ErrSessionActive when an unexpired session is already stored.
func Start(ctx context.Context, store SessionStore, ttl time.Duration, now time.Time, force bool) (*Session, error) {
	if !force {
		existing, err := store.Load(ctx)
		if err != nil && !errors.Is(err, ErrNoSession) {
			return nil, err
		}
		if existing != nil && !existing.Expired(now, ttl) {
			return existing, ErrSessionActive
		}
	}
	s := New(now)
	if err := store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
