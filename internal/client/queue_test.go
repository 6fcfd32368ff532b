package client

import (
	"context"
	"path/filepath"
	"testing"

	"plantbuilder-server/internal/session"
)

func openTestQueue(t *testing.T) *Queue {
	t.Helper()

	queue, err := OpenQueue(filepath.Join(t.TempDir(), "fallback.db"))
	if err != nil {
		t.Fatalf("open queue: %v", err)
	}
	t.Cleanup(func() { queue.Close() })
	return queue
}

func sampleSubmission(phone string, score int) session.SubmitRequest {
	remaining := 40
	return session.SubmitRequest{
		Phone:         phone,
		Sector:        "power",
		Score:         &score,
		TimeRemaining: &remaining,
	}
}

func TestQueueRoundTripsPayloads(t *testing.T) {
	ctx := context.Background()
	queue := openTestQueue(t)

	id, err := queue.Enqueue(ctx, sampleSubmission("5551234", 72))
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if id == "" {
		t.Fatal("enqueue returned an empty id")
	}

	pending, err := queue.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending entry, got %d", len(pending))
	}

	entry := pending[0]
	if entry.ID != id {
		t.Errorf("expected id %s, got %s", id, entry.ID)
	}
	if entry.Payload.Phone != "5551234" {
		t.Errorf("payload phone lost in round trip: %+v", entry.Payload)
	}
	if entry.Payload.Score == nil || *entry.Payload.Score != 72 {
		t.Errorf("payload score lost in round trip: %+v", entry.Payload)
	}
	if entry.Payload.TimeRemaining == nil || *entry.Payload.TimeRemaining != 40 {
		t.Errorf("payload time remaining lost in round trip: %+v", entry.Payload)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("created_at not stored")
	}
}

func TestQueueRemovesEntriesIndividually(t *testing.T) {
	ctx := context.Background()
	queue := openTestQueue(t)

	first, err := queue.Enqueue(ctx, sampleSubmission("5551234", 60))
	if err != nil {
		t.Fatalf("enqueue first: %v", err)
	}
	if _, err := queue.Enqueue(ctx, sampleSubmission("5555678", 80)); err != nil {
		t.Fatalf("enqueue second: %v", err)
	}

	if err := queue.Remove(ctx, first); err != nil {
		t.Fatalf("remove: %v", err)
	}

	count, err := queue.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 entry left, got %d", count)
	}

	pending, err := queue.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending[0].Payload.Phone != "5555678" {
		t.Errorf("wrong entry removed: %+v", pending[0].Payload)
	}
}

func TestQueueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fallback.db")

	queue, err := OpenQueue(path)
	if err != nil {
		t.Fatalf("open queue: %v", err)
	}
	if _, err := queue.Enqueue(ctx, sampleSubmission("5551234", 55)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := queue.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenQueue(path)
	if err != nil {
		t.Fatalf("reopen queue: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if count != 1 {
		t.Errorf("queued entry lost across restart, count=%d", count)
	}
}
