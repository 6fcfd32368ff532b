package session

import (
	"testing"
	"time"

	"plantbuilder-server/internal/scoring"
)

func testRules() Rules {
	return Rules{
		TotalSessionSeconds:     150,
		MinimumPlausibleSeconds: 10,
		GracePeriodSeconds:      5,
		TimeMismatchPenalty:     0.5,
		NoSessionPenalty:        0.75,
	}
}

func TestNoSessionStartIsPenalized(t *testing.T) {
	now := time.Now()

	verdict := EvaluateTiming(80, nil, false, 150, now, testRules())

	if verdict.Accepted != 60 {
		t.Errorf("expected accepted score 60 (80 * 0.75), got %d", verdict.Accepted)
	}
	if verdict.Warning != WarningNoSession {
		t.Errorf("expected no-session warning, got %q", verdict.Warning)
	}
}

func TestImplausiblyFastSubmissionScoresZero(t *testing.T) {
	now := time.Now()
	start := now.Add(-3 * time.Second)

	// The client claims 140 of the 150 timer seconds were used, but the
	// server saw the session start 3 seconds ago.
	verdict := EvaluateTiming(95, &start, true, 10, now, testRules())

	if verdict.Accepted != 0 {
		t.Errorf("expected accepted score 0, got %d", verdict.Accepted)
	}
	if verdict.Warning != WarningTooFast {
		t.Errorf("expected too-fast warning, got %q", verdict.Warning)
	}
}

func TestTimeMismatchHalvesScore(t *testing.T) {
	now := time.Now()
	start := now.Add(-20 * time.Second)

	// Client claims the whole 150s were used; server observed only 20s.
	verdict := EvaluateTiming(80, &start, true, 0, now, testRules())

	if verdict.Accepted != 40 {
		t.Errorf("expected accepted score 40 (80 * 0.5), got %d", verdict.Accepted)
	}
	if verdict.Warning != WarningTimeMismatch {
		t.Errorf("expected time-mismatch warning, got %q", verdict.Warning)
	}
}

func TestPlausibleSubmissionIsAcceptedAsIs(t *testing.T) {
	now := time.Now()
	start := now.Add(-60 * time.Second)

	verdict := EvaluateTiming(85, &start, true, 90, now, testRules())

	if verdict.Accepted != 85 {
		t.Errorf("expected claimed score accepted as-is, got %d", verdict.Accepted)
	}
	if verdict.Warning != "" {
		t.Errorf("expected no warning, got %q", verdict.Warning)
	}
}

func TestGracePeriodAbsorbsSmallLatency(t *testing.T) {
	now := time.Now()
	start := now.Add(-56 * time.Second)

	// Client elapsed is 60s, server observed 56s: within the 5s allowance.
	verdict := EvaluateTiming(70, &start, true, 90, now, testRules())

	if verdict.Warning != "" {
		t.Errorf("expected latency within grace period to pass, got warning %q", verdict.Warning)
	}
	if verdict.Accepted != 70 {
		t.Errorf("expected 70 accepted, got %d", verdict.Accepted)
	}
}

func TestClaimedScoreIsBounded(t *testing.T) {
	now := time.Now()
	start := now.Add(-60 * time.Second)

	verdict := EvaluateTiming(100000, &start, true, 90, now, testRules())
	if int(verdict.Accepted) != scoring.MaxScore {
		t.Errorf("expected claim clamped to %d, got %d", scoring.MaxScore, verdict.Accepted)
	}

	verdict = EvaluateTiming(-10, &start, true, 90, now, testRules())
	if verdict.Accepted != 0 {
		t.Errorf("expected negative claim clamped to 0, got %d", verdict.Accepted)
	}
}

func TestInactiveSessionCountsAsNoSession(t *testing.T) {
	now := time.Now()
	start := now.Add(-120 * time.Second)

	// A second submit without a fresh start: the prior session was closed.
	verdict := EvaluateTiming(40, &start, false, 30, now, testRules())

	if verdict.Warning != WarningNoSession {
		t.Errorf("expected no-session warning for inactive session, got %q", verdict.Warning)
	}
	if verdict.Accepted != 30 {
		t.Errorf("expected accepted score 30 (40 * 0.75), got %d", verdict.Accepted)
	}
}
