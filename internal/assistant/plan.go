package assistant

import (
	"fmt"
	"strings"
)

// PlanTier is the subscription level gating assistant usage.
type PlanTier string

const (
	PlanFree       PlanTier = "free"
	PlanBasic      PlanTier = "basic"
	PlanPro        PlanTier = "pro"
	PlanEnterprise PlanTier = "enterprise"
)

func ParsePlanTier(s string) (PlanTier, error) {
	switch PlanTier(strings.ToLower(strings.TrimSpace(s))) {
	case PlanFree:
		return PlanFree, nil
	case PlanBasic:
		return PlanBasic, nil
	case PlanPro:
		return PlanPro, nil
	case PlanEnterprise:
		return PlanEnterprise, nil
	}
	return "", fmt.Errorf("unknown plan tier %q", s)
}

// DefaultFreeEntryLimit is the number of log entries after which the free
// tier stops accepting submissions.
const DefaultFreeEntryLimit = 8

// PlanGate decides whether a new exchange may proceed for a given tier and
// log size. It never touches the network or the conversation log.
type PlanGate struct {
	freeEntryLimit int
}

// NewPlanGate builds a gate with the given free-tier entry limit; a
// non-positive limit falls back to DefaultFreeEntryLimit.
func NewPlanGate(freeEntryLimit int) *PlanGate {
	if freeEntryLimit <= 0 {
		freeEntryLimit = DefaultFreeEntryLimit
	}
	return &PlanGate{freeEntryLimit: freeEntryLimit}
}

// Authorize reports whether a new submission is permitted. Only the free
// tier is constrained: once the log already holds more entries than the
// limit, further submissions are denied.
func (g *PlanGate) Authorize(tier PlanTier, entryCount int) bool {
	if tier == PlanFree && entryCount > g.freeEntryLimit {
		return false
	}
	return true
}
