package service

import (
	"sort"
	"sync"
	"time"

	"pdf-summarizer/internal/domain"

	"github.com/google/uuid"
)

const defaultMaxSessions = 1000

// SessionStore keeps per-client processing state in memory. Sessions are
// identified by the X-Session-ID header; a request without one gets a new ID.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*domain.Session
	maxSessions int
	now         func() time.Time
}

// NewSessionStore creates a store holding at most maxSessions idle sessions.
func NewSessionStore(maxSessions int) *SessionStore {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &SessionStore{
		sessions:    make(map[string]*domain.Session),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Begin marks the session as processing fileName. It returns
// domain.ErrSessionBusy when the session is already processing.
func (s *SessionStore) Begin(id, fileName string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	session, ok := s.sessions[id]
	if !ok {
		s.pruneLocked()
		session = &domain.Session{ID: id}
		s.sessions[id] = session
	}
	if session.Processing {
		return nil, domain.ErrSessionBusy
	}
	session.Processing = true
	session.FileName = fileName

	snapshot := *session
	return &snapshot, nil
}

// End clears the processing flag. A failed request leaves the last result
// untouched; source is empty for requests that produce no summary.
func (s *SessionStore) End(session *domain.Session, succeeded bool, source domain.SummarySource) {
	if session == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[session.ID]
	if !ok {
		return
	}
	stored.Processing = false
	if !succeeded {
		return
	}
	stored.LastProcessedAt = s.now().UTC()
	if source != "" {
		stored.LastSource = source
	}
}

// Get returns a copy of the session state.
func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	snapshot := *session
	return &snapshot, true
}

// pruneLocked drops the least recently finished idle sessions once the store is full.
func (s *SessionStore) pruneLocked() {
	if len(s.sessions) < s.maxSessions {
		return
	}
	idle := make([]*domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if !session.Processing {
			idle = append(idle, session)
		}
	}
	sort.Slice(idle, func(i, j int) bool {
		return idle[i].LastProcessedAt.Before(idle[j].LastProcessedAt)
	})
	for _, session := range idle {
		if len(s.sessions) < s.maxSessions {
			break
		}
		delete(s.sessions, session.ID)
	}
}

var _ domain.SessionStore = (*SessionStore)(nil)
