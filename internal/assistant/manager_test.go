package assistant

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

func newTestManager() *SessionManager {
	return NewSessionManager(&scriptedClient{}, NewPlanGate(DefaultFreeEntryLimit), content.LanguageEN, zerolog.Nop())
}

func TestSessionManagerReturnsSameSessionPerUser(t *testing.T) {
	m := newTestManager()

	first := m.ForUser("clinician-1", PlanFree)
	second := m.ForUser("clinician-1", PlanFree)
	other := m.ForUser("clinician-2", PlanFree)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestSessionManagerSyncsPlanTier(t *testing.T) {
	m := newTestManager()

	s := m.ForUser("clinician-1", PlanFree)
	require.Equal(t, PlanFree, s.PlanTier())

	m.ForUser("clinician-1", PlanPro)
	assert.Equal(t, PlanPro, s.PlanTier())
}

func TestSessionManagerReset(t *testing.T) {
	m := newTestManager()

	first := m.ForUser("clinician-1", PlanFree)
	m.Reset("clinician-1")
	second := m.ForUser("clinician-1", PlanFree)

	assert.NotSame(t, first, second)
	assert.Len(t, second.Entries(), 1)
}
