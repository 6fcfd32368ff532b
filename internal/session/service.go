package session

import (
	"context"
	"log/slog"
	"time"

	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/shared/config"
	"plantbuilder-server/internal/shared/errors"
)

// PlayerStore is the slice of the player repository the protocol needs.
type PlayerStore interface {
	GetByPhone(ctx context.Context, phone string) (*player.Player, error)
	StartSession(ctx context.Context, phone string) (time.Time, error)
	RecordAttempt(ctx context.Context, phone, sector string, acceptedScore int) (*player.AttemptResult, error)
}

// ScoreRecorder receives every accepted score, e.g. to keep the leaderboard
// cache current. A nil recorder is allowed.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, phone string, bestScore int) error
}

type Service struct {
	store    PlayerStore
	recorder ScoreRecorder
	rules    Rules
	logger   *slog.Logger
}

func NewService(store PlayerStore, recorder ScoreRecorder, rules Rules, logger *slog.Logger) *Service {
	logger.Debug("Initializing session service",
		"total_session_seconds", rules.TotalSessionSeconds,
		"minimum_plausible_seconds", rules.MinimumPlausibleSeconds,
		"grace_period_seconds", rules.GracePeriodSeconds,
	)

	return &Service{
		store:    store,
		recorder: recorder,
		rules:    rules,
		logger:   logger,
	}
}

// RulesFromConfig maps the game config section onto the protocol rules.
func RulesFromConfig(cfg config.GameConfig) Rules {
	return Rules{
		TotalSessionSeconds:     cfg.TotalSessionSeconds,
		MinimumPlausibleSeconds: cfg.MinimumPlausibleSeconds,
		GracePeriodSeconds:      cfg.GracePeriodSeconds,
		TimeMismatchPenalty:     cfg.TimeMismatchPenalty,
		NoSessionPenalty:        cfg.NoSessionPenalty,
	}
}

// Start stamps a new server-side session for the user. Starting over an
// already active session overwrites it; the abandoned round is not recorded.
func (s *Service) Start(ctx context.Context, req StartRequest) (*StartResponse, error) {
	if req.Phone == "" {
		return nil, errors.Validation("phone number is required")
	}

	startedAt, err := s.store.StartSession(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	return &StartResponse{
		Success:   true,
		StartedAt: startedAt.UTC().Format(time.RFC3339),
	}, nil
}

// Submit runs the anti-cheat pipeline and records the attempt. A submission
// for an unrecognized user is rejected outright; plausibility penalties are
// never a substitute for identity validation.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	logger := s.logger.With(
		"component", "session_service",
		"operation", "submit",
		"phone", req.Phone,
		"sector", req.Sector,
	)

	if req.Phone == "" {
		return nil, errors.Validation("phone number is required")
	}
	if req.Score == nil {
		return nil, errors.Validation("score is required")
	}

	p, err := s.store.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	claimed := ClaimedScore(*req.Score)
	timeRemaining := 0
	if req.TimeRemaining != nil {
		timeRemaining = *req.TimeRemaining
	}

	verdict := EvaluateTiming(claimed, p.CurrentSessionStart, p.CurrentSessionActive, timeRemaining, time.Now(), s.rules)
	if verdict.Warning != "" {
		logger.Warn("Plausibility check triggered",
			"claimed_score", int(claimed),
			"accepted_score", int(verdict.Accepted),
			"warning", verdict.Warning,
		)
	}

	result, err := s.store.RecordAttempt(ctx, req.Phone, req.Sector, int(verdict.Accepted))
	if err != nil {
		return nil, err
	}

	isNewHigh := int(verdict.Accepted) > result.PreviousBest
	message := MessageBestUnchanged
	if isNewHigh {
		message = MessageNewHighScore
	}

	if s.recorder != nil {
		if err := s.recorder.RecordScore(ctx, req.Phone, result.BestScore); err != nil {
			// The attempt is already persisted; a stale leaderboard cache
			// heals on the next accepted score.
			logger.Warn("Failed to record score on leaderboard", "error", err)
		}
	}

	logger.Info("Score submission processed",
		"claimed_score", int(claimed),
		"accepted_score", int(verdict.Accepted),
		"best_score", result.BestScore,
		"is_new_high_score", isNewHigh,
		"attempt_count", result.AttemptCount,
	)

	return &SubmitResponse{
		AcceptedScore:  int(verdict.Accepted),
		ClaimedScore:   int(claimed),
		BestScore:      result.BestScore,
		IsNewHighScore: isNewHigh,
		AttemptCount:   result.AttemptCount,
		Message:        message,
		Warning:        verdict.Warning,
	}, nil
}
