package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

var (
	// ErrBusy rejects a submission while an inference call is outstanding.
	ErrBusy = errors.New("an inference call is already in progress")
	// ErrQuotaExceeded is a plan-gate denial. It never enters the log and is
	// not retryable without a tier change.
	ErrQuotaExceeded = errors.New("plan quota exceeded")
	// ErrNoUserTurn means RetryLast was called before any user entry exists.
	ErrNoUserTurn = errors.New("no user entry to retry")
)

// Session owns one conversation: its log, plan tier, active language and
// the single in-flight inference call. All state lives in memory for the
// lifetime of the session.
//
// Submit and RetryLast run the inference call on the caller's goroutine;
// while it is outstanding Pending reports true and concurrent submissions
// are rejected with ErrBusy, so at most one call is ever in flight.
type Session struct {
	id     string
	client InferenceClient
	gate   *PlanGate
	log    zerolog.Logger

	mu      sync.Mutex
	entries []Entry
	plan    PlanTier
	lang    content.Language
	pending bool
}

// NewSession seeds a fresh conversation with the greeting entry in the
// given language.
func NewSession(client InferenceClient, gate *PlanGate, lang content.Language, tier PlanTier, log zerolog.Logger) *Session {
	s := &Session{
		id:     uuid.NewString(),
		client: client,
		gate:   gate,
		plan:   tier,
		lang:   lang,
	}
	s.log = log.With().Str("session_id", s.id).Logger()
	s.entries = []Entry{newEntry(RoleAssistant, greeting.ForLanguage(lang))}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Entries returns a copy of the conversation log in append order.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Pending reports whether an inference call is outstanding so collaborators
// can disable input.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Session) Language() content.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) PlanTier() PlanTier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

func (s *Session) SetPlanTier(tier PlanTier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = tier
}

// SetLanguage switches the language the assistant responds in. While no
// user turn has occurred yet the seed greeting is regenerated in the new
// language; user-originated turns are never touched.
func (s *Session) SetLanguage(lang content.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang == s.lang {
		return
	}
	s.lang = lang
	if !s.hasUserTurnLocked() && len(s.entries) > 0 {
		s.entries[0] = newEntry(RoleAssistant, greeting.ForLanguage(lang))
	}
}

// Submit starts a new exchange. Blank input is ignored silently; a denial
// by the plan gate returns ErrQuotaExceeded without touching the log or
// the inference client. Otherwise exactly one user entry is appended,
// followed by exactly one outcome entry (assistant or error) once the
// inference call completes.
func (s *Session) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	if !s.gate.Authorize(s.plan, len(s.entries)) {
		s.mu.Unlock()
		s.log.Debug().Str("plan", string(s.plan)).Msg("submission denied by plan gate")
		return ErrQuotaExceeded
	}
	history := s.historyLocked(len(s.entries))
	lang := s.lang
	s.entries = append(s.entries, newEntry(RoleUser, text))
	s.pending = true
	s.mu.Unlock()

	s.complete(ctx, history, text, lang)
	return nil
}

// RetryLast replays the text of the most recent user entry as a fresh
// inference call. The original user entry is not duplicated; only a new
// outcome entry is appended.
func (s *Session) RetryLast(ctx context.Context) error {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	last := -1
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Role == RoleUser {
			last = i
			break
		}
	}
	if last < 0 {
		s.mu.Unlock()
		return ErrNoUserTurn
	}
	history := s.historyLocked(last)
	text := s.entries[last].Text
	lang := s.lang
	s.pending = true
	s.mu.Unlock()

	s.complete(ctx, history, text, lang)
	return nil
}

// complete runs the inference call and appends the single outcome entry.
// Called without the lock held; pending is true for its whole duration.
func (s *Session) complete(ctx context.Context, history []Turn, input string, lang content.Language) {
	res, err := s.client.Generate(ctx, Request{
		SystemInstruction: systemInstruction(lang),
		History:           history,
		Input:             input,
		Language:          lang,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if err != nil {
		s.log.Error().Err(err).Msg("inference call failed")
		s.entries = append(s.entries, newEntry(RoleError, connectionFailure.ForLanguage(lang)))
		return
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		text = emptyResponseFallback
	}
	entry := newEntry(RoleAssistant, text)
	entry.Citations = normalizeCitations(res.Citations)
	s.entries = append(s.entries, entry)
	s.log.Debug().Int("citations", len(entry.Citations)).Msg("assistant entry appended")
}

// historyLocked converts the first n log entries into inference context.
// Error entries carry no conversational content and are skipped.
func (s *Session) historyLocked(n int) []Turn {
	turns := make([]Turn, 0, n)
	for _, e := range s.entries[:n] {
		if e.Role == RoleError {
			continue
		}
		turns = append(turns, Turn{Role: e.Role, Text: e.Text})
	}
	return turns
}

func (s *Session) hasUserTurnLocked() bool {
	for _, e := range s.entries {
		if e.Role == RoleUser {
			return true
		}
	}
	return false
}
