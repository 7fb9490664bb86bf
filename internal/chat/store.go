package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Alias1177/econagent/models"
)

// Store keeps chat transcripts in memory for the lifetime of a session.
// Sessions idle longer than the TTL are swept periodically; nothing is
// persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
	ttl      time.Duration
	sweeper  *time.Ticker
	done     chan struct{}
}

// NewStore creates a session store with the given idle TTL and starts the
// background sweep.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*models.ChatSession),
		ttl:      ttl,
		sweeper:  time.NewTicker(5 * time.Minute),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Get returns the session with the given ID, creating a fresh one when the
// ID is empty or unknown (expired sessions behave like unknown ones).
func (s *Store) Get(id string) *models.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			session.LastActivity = time.Now()
			return session
		}
	}

	session := &models.ChatSession{
		ID:           uuid.NewString(),
		LastActivity: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

// Append records one exchange on the session's transcript.
func (s *Store) Append(id, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return
	}
	session.Messages = append(session.Messages, models.ChatMessage{
		Role:    role,
		Content: content,
		SentAt:  time.Now(),
	})
	session.LastActivity = time.Now()
}

// Transcript returns a copy of the session's messages, oldest first.
func (s *Store) Transcript(id string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	out := make([]models.ChatMessage, len(session.Messages))
	copy(out, session.Messages)
	return out
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweep.
func (s *Store) Close() {
	s.sweeper.Stop()
	close(s.done)
}

func (s *Store) sweep() {
	for {
		select {
		case <-s.done:
			return
		case <-s.sweeper.C:
			s.evictIdle()
		}
	}
}

func (s *Store) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
