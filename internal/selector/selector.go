// Package selector picks which tip a session is looking at.
//
// A session starts Unset. The first access draws a uniform index; after
// that the index only changes when the user explicitly asks for a new tip.
package selector

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/fakeyudi/tipsfortoday/internal/session"
)

// Source is a uniform integer generator. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// Selector draws indices into a catalog of a fixed size.
type Selector struct {
	size int
	src  Source
}

// New returns a Selector over [0, size).
func New(size int, src Source) (*Selector, error) {
	if size < 1 {
		return nil, errors.New("selector: size must be at least 1")
	}
	if src == nil {
		return nil, errors.New("selector: source must not be nil")
	}
	return &Selector{size: size, src: src}, nil
}

// NewSource returns a PCG backed Source. A zero seed is replaced with one
// derived from the clock.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Size returns the exclusive upper bound of selected indices.
func (s *Selector) Size() int { return s.size }

// CurrentIndex returns the session's index, selecting one first if the
// session has none. A stored index outside [0, size) counts as none.
func (s *Selector) CurrentIndex(st *session.Session) int {
	if i, ok := st.Selection(); ok && i >= 0 && i < s.size {
		return i
	}
	return s.draw(st)
}

// Reroll replaces the session's index with a fresh draw. The new index may
// equal the old one.
func (s *Selector) Reroll(st *session.Session) int {
	st.Rerolls++
	return s.draw(st)
}

// Pass performs one render pass: reroll if triggered, otherwise keep the
// current selection.
func (s *Selector) Pass(st *session.Session, triggered bool) int {
	if triggered {
		return s.Reroll(st)
	}
	return s.CurrentIndex(st)
}

func (s *Selector) draw(st *session.Session) int {
	i := s.src.IntN(s.size)
	st.Select(i)
	return i
}
