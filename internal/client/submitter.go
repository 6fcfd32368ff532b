package client

import (
	"context"
	stderrors "errors"
	"log/slog"

	"plantbuilder-server/internal/session"
)

// Submitter sends finished rounds to the server, falling back to the durable
// queue when the transport fails. Replays are idempotent against the
// server's only-raise-best rule, so re-sending a previously accepted score
// after a crash cannot corrupt state.
type Submitter struct {
	api    *API
	queue  *Queue
	logger *slog.Logger
}

// Outcome describes what happened to one submission attempt.
type Outcome struct {
	Response *session.SubmitResponse
	Queued   bool
	QueueID  string
}

func NewSubmitter(api *API, queue *Queue, logger *slog.Logger) *Submitter {
	return &Submitter{
		api:    api,
		queue:  queue,
		logger: logger,
	}
}

// Submit tries a live submission. A transport failure routes the payload
// into the fallback queue instead of surfacing data loss; any other error
// (validation, unknown user) is returned to the caller untouched.
func (s *Submitter) Submit(ctx context.Context, req session.SubmitRequest) (*Outcome, error) {
	resp, err := s.api.SubmitScore(ctx, req)
	if err == nil {
		return &Outcome{Response: resp}, nil
	}

	var transportErr *TransportError
	if !stderrors.As(err, &transportErr) {
		return nil, err
	}

	s.logger.Warn("Submission failed at transport level, queueing for retry", "error", err)

	id, queueErr := s.queue.Enqueue(ctx, req)
	if queueErr != nil {
		// Both the network and the local store failed; nothing left to hide
		// the loss behind.
		return nil, stderrors.Join(err, queueErr)
	}

	return &Outcome{Queued: true, QueueID: id}, nil
}

// Flush replays queued submissions, oldest first. Each entry is removed only
// after the server confirms acceptance; entries that still fail at the
// transport level stay queued for the next opportunity.
func (s *Submitter) Flush(ctx context.Context) (flushed int, err error) {
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return 0, err
	}

	for _, entry := range pending {
		resp, err := s.api.SubmitScore(ctx, entry.Payload)
		if err != nil {
			var transportErr *TransportError
			if stderrors.As(err, &transportErr) {
				// Still offline; keep the rest queued and try again later.
				return flushed, nil
			}
			// The server answered and rejected the payload; retrying it
			// forever would wedge the queue.
			s.logger.Warn("Dropping queued submission rejected by server",
				"queue_id", entry.ID, "error", err)
			if removeErr := s.queue.Remove(ctx, entry.ID); removeErr != nil {
				return flushed, removeErr
			}
			continue
		}

		s.logger.Info("Replayed queued submission",
			"queue_id", entry.ID,
			"accepted_score", resp.AcceptedScore,
			"best_score", resp.BestScore,
		)

		if err := s.queue.Remove(ctx, entry.ID); err != nil {
			return flushed, err
		}
		flushed++
	}

	return flushed, nil
}
