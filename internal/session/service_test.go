package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/shared/errors"
)

// fakeStore mirrors the repository's keyed-update semantics in memory.
type fakeStore struct {
	players map[string]*player.Player
}

func newFakeStore(phones ...string) *fakeStore {
	store := &fakeStore{players: make(map[string]*player.Player)}
	for _, phone := range phones {
		store.players[phone] = &player.Player{
			Phone:       phone,
			DisplayName: "Builder " + phone,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}
	return store
}

func (s *fakeStore) GetByPhone(_ context.Context, phone string) (*player.Player, error) {
	p, ok := s.players[phone]
	if !ok {
		return nil, errors.NotFoundf("player %s not found", phone)
	}
	copied := *p
	return &copied, nil
}

func (s *fakeStore) StartSession(_ context.Context, phone string) (time.Time, error) {
	p, ok := s.players[phone]
	if !ok {
		return time.Time{}, errors.NotFoundf("player %s not found", phone)
	}
	now := time.Now()
	p.CurrentSessionStart = &now
	p.CurrentSessionActive = true
	return now, nil
}

func (s *fakeStore) RecordAttempt(_ context.Context, phone, sector string, acceptedScore int) (*player.AttemptResult, error) {
	p, ok := s.players[phone]
	if !ok {
		return nil, errors.NotFoundf("player %s not found", phone)
	}

	previousBest := p.BestScore
	p.LastScore = acceptedScore
	p.LastSector = sector
	p.AttemptCount++
	if acceptedScore > p.BestScore {
		p.BestScore = acceptedScore
	}
	p.CurrentSessionActive = false
	now := time.Now()
	p.LastSessionEnd = &now

	return &player.AttemptResult{
		PreviousBest: previousBest,
		BestScore:    p.BestScore,
		AttemptCount: p.AttemptCount,
		EndedAt:      now,
	}, nil
}

type captureRecorder struct {
	phone string
	best  int
	calls int
}

func (r *captureRecorder) RecordScore(_ context.Context, phone string, bestScore int) error {
	r.phone = phone
	r.best = bestScore
	r.calls++
	return nil
}

func newTestService(store PlayerStore, recorder ScoreRecorder) *Service {
	return NewService(store, recorder, testRules(), slog.Default())
}

func intPtr(v int) *int { return &v }

func TestSubmitWithoutSessionStartIsPenalized(t *testing.T) {
	store := newFakeStore("5551234")
	svc := newTestService(store, nil)

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Phone:         "5551234",
		Sector:        "power",
		Score:         intPtr(80),
		TimeRemaining: intPtr(0),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if resp.AcceptedScore != 60 {
		t.Errorf("expected accepted score 60, got %d", resp.AcceptedScore)
	}
	if resp.ClaimedScore != 80 {
		t.Errorf("expected claimed score 80, got %d", resp.ClaimedScore)
	}
	if resp.Warning != WarningNoSession {
		t.Errorf("expected no-session warning, got %q", resp.Warning)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := newFakeStore("5551234")
	store.players["5551234"].BestScore = 70
	svc := newTestService(store, nil)

	if _, err := svc.Start(context.Background(), StartRequest{Phone: "5551234"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Make the session plausibly old.
	started := time.Now().Add(-60 * time.Second)
	store.players["5551234"].CurrentSessionStart = &started

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Phone:         "5551234",
		Sector:        "power",
		Score:         intPtr(65),
		TimeRemaining: intPtr(90),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if resp.BestScore != 70 {
		t.Errorf("expected best score to stay 70, got %d", resp.BestScore)
	}
	if resp.IsNewHighScore {
		t.Error("65 against a best of 70 must not be a new high score")
	}
	if resp.Message != MessageBestUnchanged {
		t.Errorf("expected message %q, got %q", MessageBestUnchanged, resp.Message)
	}
	if resp.AttemptCount != 1 {
		t.Errorf("expected attempt count 1, got %d", resp.AttemptCount)
	}
}

func TestNewHighScoreIsReported(t *testing.T) {
	store := newFakeStore("5551234")
	store.players["5551234"].BestScore = 70
	store.players["5551234"].AttemptCount = 4
	recorder := &captureRecorder{}
	svc := newTestService(store, recorder)

	if _, err := svc.Start(context.Background(), StartRequest{Phone: "5551234"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	started := time.Now().Add(-60 * time.Second)
	store.players["5551234"].CurrentSessionStart = &started

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Phone:         "5551234",
		Sector:        "oil-gas",
		Score:         intPtr(95),
		TimeRemaining: intPtr(90),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if resp.BestScore != 95 {
		t.Errorf("expected best score 95, got %d", resp.BestScore)
	}
	if !resp.IsNewHighScore {
		t.Error("expected a new high score")
	}
	if resp.AttemptCount != 5 {
		t.Errorf("expected attempt count incremented to 5, got %d", resp.AttemptCount)
	}
	if resp.Message != MessageNewHighScore {
		t.Errorf("expected message %q, got %q", MessageNewHighScore, resp.Message)
	}
	if recorder.calls != 1 || recorder.phone != "5551234" || recorder.best != 95 {
		t.Errorf("leaderboard recorder not updated correctly: %+v", recorder)
	}
}

func TestSubmitValidatesInput(t *testing.T) {
	store := newFakeStore("5551234")
	svc := newTestService(store, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{Score: intPtr(50)})
	if errors.GetType(err) != errors.ErrorTypeValidation {
		t.Errorf("missing phone: expected validation error, got %v", err)
	}

	_, err = svc.Submit(context.Background(), SubmitRequest{Phone: "5551234"})
	if errors.GetType(err) != errors.ErrorTypeValidation {
		t.Errorf("missing score: expected validation error, got %v", err)
	}
}

func TestUnknownPlayerIsRejectedNotPenalized(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Phone: "0000000",
		Score: intPtr(50),
	})
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}

	_, err = svc.Start(context.Background(), StartRequest{Phone: "0000000"})
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Errorf("start for unknown player: expected not-found error, got %v", err)
	}
}

func TestRestartOverwritesActiveSession(t *testing.T) {
	store := newFakeStore("5551234")
	svc := newTestService(store, nil)

	if _, err := svc.Start(context.Background(), StartRequest{Phone: "5551234"}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	first := *store.players["5551234"].CurrentSessionStart

	time.Sleep(5 * time.Millisecond)

	if _, err := svc.Start(context.Background(), StartRequest{Phone: "5551234"}); err != nil {
		t.Fatalf("second start: %v", err)
	}
	second := *store.players["5551234"].CurrentSessionStart

	if !second.After(first) {
		t.Error("restart should overwrite the prior session start timestamp")
	}
	if !store.players["5551234"].CurrentSessionActive {
		t.Error("session should remain active after a restart")
	}
}

func TestReplayedSubmissionCannotLowerBest(t *testing.T) {
	store := newFakeStore("5551234")
	svc := newTestService(store, nil)

	submit := func(score int) *SubmitResponse {
		t.Helper()
		if _, err := svc.Start(context.Background(), StartRequest{Phone: "5551234"}); err != nil {
			t.Fatalf("start: %v", err)
		}
		started := time.Now().Add(-60 * time.Second)
		store.players["5551234"].CurrentSessionStart = &started

		resp, err := svc.Submit(context.Background(), SubmitRequest{
			Phone:         "5551234",
			Sector:        "water",
			Score:         intPtr(score),
			TimeRemaining: intPtr(90),
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		return resp
	}

	first := submit(80)
	if first.BestScore != 80 {
		t.Fatalf("expected best 80 after first submit, got %d", first.BestScore)
	}

	// A crash-recovery replay of the same attempt must be a no-op for best.
	replay := submit(80)
	if replay.BestScore != 80 {
		t.Errorf("replay changed best score to %d", replay.BestScore)
	}
	if replay.IsNewHighScore {
		t.Error("replay must not report a new high score")
	}
}
