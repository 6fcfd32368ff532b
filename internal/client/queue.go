package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"plantbuilder-server/internal/session"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Queue is the durable local fallback store for submissions that failed at
// the transport level. Entries survive restarts and are removed one by one
// only on confirmed server acceptance.
type Queue struct {
	db *sql.DB
}

// QueuedSubmission is one payload awaiting retransmission.
type QueuedSubmission struct {
	ID        string
	Payload   session.SubmitRequest
	CreatedAt time.Time
}

// OpenQueue opens (and if needed creates) the queue database at path.
func OpenQueue(path string) (*Queue, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create queue directory: %w", err)
	}

	// WAL keeps the queue usable if a flush races an enqueue.
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open queue db: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	q := &Queue{db: db}
	if err := q.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate queue db: %w", err)
	}

	return q, nil
}

func (q *Queue) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pending_submissions (
		id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`

	_, err := q.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (q *Queue) Close() error {
	return q.db.Close()
}

// Enqueue stores a submission payload for a later retry.
func (q *Queue) Enqueue(ctx context.Context, payload session.SubmitRequest) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	id := uuid.NewString()
	_, err = q.db.ExecContext(ctx,
		"INSERT INTO pending_submissions (id, payload, created_at) VALUES (?, ?, ?)",
		id, string(encoded), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("enqueue submission: %w", err)
	}

	return id, nil
}

// Pending returns all queued submissions, oldest first.
func (q *Queue) Pending(ctx context.Context) ([]QueuedSubmission, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, payload, created_at FROM pending_submissions ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("query pending submissions: %w", err)
	}
	defer rows.Close()

	var pending []QueuedSubmission
	for rows.Next() {
		var entry QueuedSubmission
		var encoded string
		if err := rows.Scan(&entry.ID, &encoded, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending submission: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &entry.Payload); err != nil {
			return nil, fmt.Errorf("decode pending submission %s: %w", entry.ID, err)
		}
		pending = append(pending, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending submissions: %w", err)
	}

	return pending, nil
}

// Remove deletes one entry after the server confirmed acceptance.
func (q *Queue) Remove(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM pending_submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove submission %s: %w", id, err)
	}
	return nil
}

// Len reports how many submissions are waiting.
func (q *Queue) Len(ctx context.Context) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pending_submissions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending submissions: %w", err)
	}
	return count, nil
}
