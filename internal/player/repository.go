package player

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"plantbuilder-server/internal/shared/database"
	"plantbuilder-server/internal/shared/errors"

	"github.com/lib/pq"
)

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	logger := slog.With("component", "player_repository", "operation", "init")
	logger.Debug("Initializing player repository")
	return &Repository{db: db}
}

const playerColumns = `phone, display_name, last_score, best_score, last_sector,
	attempt_count, current_session_start, current_session_active, last_session_end,
	created_at, updated_at`

func scanPlayer(row *sql.Row) (*Player, error) {
	var p Player
	var lastSector sql.NullString
	err := row.Scan(
		&p.Phone,
		&p.DisplayName,
		&p.LastScore,
		&p.BestScore,
		&lastSector,
		&p.AttemptCount,
		&p.CurrentSessionStart,
		&p.CurrentSessionActive,
		&p.LastSessionEnd,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.LastSector = lastSector.String
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, phone, displayName string) (*Player, error) {
	logger := slog.With(
		"component", "player_repository",
		"operation", "create",
		"phone", phone,
	)
	logger.Info("Creating new player")

	query := `
		INSERT INTO players (phone, display_name)
		VALUES ($1, $2)
		RETURNING ` + playerColumns

	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, phone, displayName))
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == "23505" {
			logger.Debug("Player already registered")
			return nil, errors.Conflictf("player %s is already registered", phone)
		}
		logger.Error("Failed to create player", "error", err)
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.Info("Player created successfully", "phone", player.Phone)
	return player, nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*Player, error) {
	logger := slog.With(
		"component", "player_repository",
		"operation", "get_by_phone",
		"phone", phone,
	)
	logger.Debug("Getting player by phone")

	query := `SELECT ` + playerColumns + ` FROM players WHERE phone = $1`

	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, phone))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with phone")
			return nil, errors.NotFoundf("player %s not found", phone)
		}
		logger.Error("Database error getting player by phone", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Found player by phone", "best_score", player.BestScore)
	return player, nil
}

// StartSession stamps the session-start timestamp and marks the session
// active. A prior active session is silently overwritten.
func (r *Repository) StartSession(ctx context.Context, phone string) (time.Time, error) {
	logger := slog.With(
		"component", "player_repository",
		"operation", "start_session",
		"phone", phone,
	)
	logger.Debug("Starting session")

	query := `
		UPDATE players
		SET current_session_start = NOW(),
		    current_session_active = TRUE,
		    updated_at = NOW()
		WHERE phone = $1
		RETURNING current_session_start`

	var startedAt time.Time
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&startedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with phone")
			return time.Time{}, errors.NotFoundf("player %s not found", phone)
		}
		logger.Error("Failed to start session", "error", err)
		return time.Time{}, fmt.Errorf("failed to start session: %w", err)
	}

	logger.Info("Session started", "started_at", startedAt)
	return startedAt, nil
}

// RecordAttempt closes the active session and records one attempt in a single
// atomic statement. The row is locked, last-attempt fields are overwritten,
// the attempt counter increments, and the best score is raised with GREATEST
// so it can never decrease, even under concurrent submissions for one player.
func (r *Repository) RecordAttempt(ctx context.Context, phone, sector string, acceptedScore int) (*AttemptResult, error) {
	logger := slog.With(
		"component", "player_repository",
		"operation", "record_attempt",
		"phone", phone,
		"sector", sector,
		"accepted_score", acceptedScore,
	)
	logger.Debug("Recording attempt")

	query := `
		UPDATE players p
		SET last_score = $2,
		    last_sector = $3,
		    attempt_count = p.attempt_count + 1,
		    best_score = GREATEST(p.best_score, $2),
		    current_session_active = FALSE,
		    last_session_end = NOW(),
		    updated_at = NOW()
		FROM (
			SELECT best_score AS previous_best
			FROM players
			WHERE phone = $1
			FOR UPDATE
		) prev
		WHERE p.phone = $1
		RETURNING prev.previous_best, p.best_score, p.attempt_count, p.last_session_end`

	var result AttemptResult
	err := r.db.QueryRowContext(ctx, query, phone, acceptedScore, sector).Scan(
		&result.PreviousBest,
		&result.BestScore,
		&result.AttemptCount,
		&result.EndedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with phone")
			return nil, errors.NotFoundf("player %s not found", phone)
		}
		logger.Error("Failed to record attempt", "error", err)
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	logger.Info("Attempt recorded",
		"previous_best", result.PreviousBest,
		"best_score", result.BestScore,
		"attempt_count", result.AttemptCount,
	)
	return &result, nil
}

// TopByBestScore returns the highest-scoring players; the database fallback
// for the leaderboard when Redis is unavailable.
func (r *Repository) TopByBestScore(ctx context.Context, limit int) ([]Standing, error) {
	logger := slog.With("component", "player_repository", "operation", "top_by_best_score", "limit", limit)
	logger.Debug("Querying leaderboard from database")

	query := `
		SELECT phone, display_name, best_score
		FROM players
		WHERE best_score > 0
		ORDER BY best_score DESC, updated_at ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.Error("Failed to query leaderboard", "error", err)
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var s Standing
		if err := rows.Scan(&s.Phone, &s.DisplayName, &s.BestScore); err != nil {
			logger.Error("Failed to scan leaderboard row", "error", err)
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		standings = append(standings, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}

	logger.Debug("Leaderboard retrieved", "count", len(standings))
	return standings, nil
}
