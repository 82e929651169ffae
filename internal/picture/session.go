package picture

import (
	"sync"

	"github.com/inamate/tikzgo/internal/typeid"
)

// Session hands out picture identifiers. Identifiers increase
// monotonically within a session and are embedded in each picture's
// sentinel lines, so pictures written into the same file never collide.
type Session struct {
	mu   sync.Mutex
	next int
	id   string
}

// NewSession returns a session whose first picture gets identifier 0.
func NewSession() *Session {
	return NewSessionFrom(0)
}

// NewSessionFrom returns a session whose first picture gets identifier n.
func NewSessionFrom(n int) *Session {
	return &Session{next: n, id: typeid.NewSessionID()}
}

// ID identifies the session itself, e.g. in log output.
func (s *Session) ID() string { return s.id }

// Reset restarts numbering at zero.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
}

func (s *Session) allocate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}

// NewPicture returns an empty picture with the next identifier.
func (s *Session) NewPicture(opts ...PictureOption) *Picture {
	p := &Picture{id: s.allocate()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
