package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is one user's browsing session. It owns the tip selection.
type Session struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	LastSeen  time.Time `json:"last_seen"`
	// TipIndex is nil until the first tip is selected in this session.
	TipIndex *int `json:"tip_index,omitempty"`
	Rerolls  int  `json:"rerolls"` // explicit "give me a tip" actions
}

// New returns a fresh session with no selection.
func New(now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartTime: now,
		LastSeen:  now,
	}
}

// HasSelection reports whether a tip index has been recorded.
func (s *Session) HasSelection() bool {
	return s.TipIndex != nil
}

// Selection returns the recorded index and whether one exists.
func (s *Session) Selection() (int, bool) {
	if s.TipIndex == nil {
		return 0, false
	}
	return *s.TipIndex, true
}

// Select overwrites the recorded index.
func (s *Session) Select(i int) {
	s.TipIndex = &i
}

// Expired reports whether the session has been idle longer than ttl.
// A non-positive ttl never expires.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.LastSeen) > ttl
}
