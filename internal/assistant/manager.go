package assistant

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

// SessionManager hands out one Session per user, created lazily. Sessions
// are held in memory only; there is no cross-session shared state beyond
// the inference client and the plan gate.
type SessionManager struct {
	client      InferenceClient
	gate        *PlanGate
	defaultLang content.Language
	log         zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(client InferenceClient, gate *PlanGate, defaultLang content.Language, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		client:      client,
		gate:        gate,
		defaultLang: defaultLang,
		log:         log,
		sessions:    make(map[string]*Session),
	}
}

// ForUser returns the user's session, creating it on first use. The plan
// tier comes from the caller's credentials on every request and is kept in
// sync on the session.
func (m *SessionManager) ForUser(userID string, tier PlanTier) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = NewSession(m.client, m.gate, m.defaultLang, tier, m.log.With().Str("user_id", userID).Logger())
		m.sessions[userID] = s
		return s
	}
	s.SetPlanTier(tier)
	return s
}

// Reset discards the user's session so the next request starts a fresh
// conversation.
func (m *SessionManager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
