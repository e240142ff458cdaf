package chat

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Message is a single turn in the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds per-conversation state. The enclosing pipeline processes
// one message at a time per session, so only the store map is locked;
// session fields themselves are not.
type Session struct {
	ID            string
	History       []Message
	LeadFormShown bool
	LeadSubmitted bool
}

// leadKeywords trigger the lead capture form when present in a message.
var leadKeywords = []string{
	"contact me",
	"whatsapp",
	"book me",
	"contact details",
	"call me",
	"reach me",
	"phone",
}

// WantsContact reports whether a message contains a lead trigger keyword.
func WantsContact(message string) bool {
	m := strings.ToLower(message)
	for _, kw := range leadKeywords {
		if strings.Contains(m, kw) {
			return true
		}
	}
	return false
}

// SessionStore keeps active sessions in memory, keyed by session ID.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating a fresh one (with a new ID)
// when id is empty or unknown.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}

	session := &Session{ID: uuid.NewString()}
	s.sessions[session.ID] = session
	return session
}

// End removes a session from the store.
func (s *SessionStore) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
