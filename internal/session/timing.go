package session

import (
	"math"
	"time"

	"plantbuilder-server/internal/scoring"
)

// Warning texts returned verbatim to the client when a submission trips a
// plausibility check.
const (
	WarningTooFast      = "Submission too fast to be a real attempt; score not counted"
	WarningTimeMismatch = "Reported time remaining does not match server records; score reduced"
	WarningNoSession    = "No session start recorded for this attempt; score reduced"
)

// Rules are the timing plausibility knobs, loaded from config.
type Rules struct {
	TotalSessionSeconds     int
	MinimumPlausibleSeconds int
	GracePeriodSeconds      int
	TimeMismatchPenalty     float64
	NoSessionPenalty        float64
}

// TimingVerdict is the outcome of the plausibility pipeline: the score the
// server will actually record, plus a warning when one was triggered.
type TimingVerdict struct {
	Accepted AcceptedScore
	Warning  string
}

// EvaluateTiming cross-checks the client's claim against the server-recorded
// session start. Violations are never rejected outright; they convert into a
// penalized-but-accepted score so some progress is always recordable while
// abuse stays unprofitable.
func EvaluateTiming(claimed ClaimedScore, sessionStart *time.Time, sessionActive bool, timeRemaining int, now time.Time, rules Rules) TimingVerdict {
	// Bound the claim before anything else; the client's arithmetic is not
	// trusted either.
	if claimed < 0 {
		claimed = 0
	}
	if int(claimed) > scoring.MaxScore {
		claimed = ClaimedScore(scoring.MaxScore)
	}

	// Without a session-start record the elapsed checks have nothing to
	// compare against, so this check fires first.
	if sessionStart == nil || !sessionActive {
		return TimingVerdict{
			Accepted: penalize(claimed, rules.NoSessionPenalty),
			Warning:  WarningNoSession,
		}
	}

	actualElapsed := int(now.Sub(*sessionStart).Seconds())
	clientElapsed := rules.TotalSessionSeconds - timeRemaining

	if actualElapsed < rules.MinimumPlausibleSeconds {
		return TimingVerdict{
			Accepted: 0,
			Warning:  WarningTooFast,
		}
	}

	// The client claims to have used more time than the server observed,
	// beyond the network-latency allowance.
	if actualElapsed < clientElapsed-rules.GracePeriodSeconds {
		return TimingVerdict{
			Accepted: penalize(claimed, rules.TimeMismatchPenalty),
			Warning:  WarningTimeMismatch,
		}
	}

	return TimingVerdict{Accepted: AcceptedScore(claimed)}
}

func penalize(claimed ClaimedScore, factor float64) AcceptedScore {
	return AcceptedScore(math.Round(float64(claimed) * factor))
}
