package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"staytrack/internal/infra/storage/memory"
)

func TestWorker_TopicFor(t *testing.T) {
	w := &Worker{}
	if got := w.topicFor("property.reservation_committed"); got != "property.events.v1" {
		t.Fatalf("topic: %s", got)
	}
	w.TopicPrefix = "staging."
	if got := w.topicFor("property.created"); got != "staging.property.events.v1" {
		t.Fatalf("prefixed topic: %s", got)
	}
	if got := w.topicFor("heartbeat"); got != "staging.heartbeat.events.v1" {
		t.Fatalf("undotted topic: %s", got)
	}
}

func TestWorker_FormatPayloadBuildsEnvelope(t *testing.T) {
	w := &Worker{Source: "app://test"}
	rec := &memory.OutboxRecord{
		ID:         "a",
		Name:       "property.created",
		Payload:    []byte(`{"name":"Plaza","rooms":3}`),
		OccurredAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Aggregate:  "Plaza",
		Headers:    map[string]string{"x-request-id": "r1"},
	}
	payload, headers, err := w.formatPayload(rec)
	if err != nil {
		t.Fatal(err)
	}
	var evt map[string]any
	if err := json.Unmarshal(payload, &evt); err != nil {
		t.Fatal(err)
	}
	if evt["specversion"] != "1.0" || evt["type"] != "property.created.v1" || evt["source"] != "app://test" {
		t.Fatalf("envelope: %v", evt)
	}
	data := evt["data"].(map[string]any)
	if data["name"] != "Plaza" || data["rooms"].(float64) != 3 {
		t.Fatalf("data: %v", data)
	}
	if headers["content-type"] != "application/cloudevents+json" || headers["x-request-id"] != "r1" {
		t.Fatalf("headers: %v", headers)
	}
}

func TestWorker_FormatPayloadRejectsBadJSON(t *testing.T) {
	w := &Worker{}
	rec := &memory.OutboxRecord{ID: "a", Name: "property.created", Payload: []byte("not json")}
	if _, _, err := w.formatPayload(rec); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestWorker_NextRetryWalksBackoff(t *testing.T) {
	w := &Worker{Backoff: []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}}
	now := time.Now()
	steps := []struct {
		attempts int
		want     time.Duration
	}{
		{0, time.Second},
		{1, 5 * time.Second},
		{2, 30 * time.Second},
		{9, 30 * time.Second}, // clamps to the last step
	}
	for _, s := range steps {
		got := w.nextRetry(s.attempts).Sub(now)
		if got < s.want-100*time.Millisecond || got > s.want+time.Second {
			t.Errorf("attempts=%d: got %v, want about %v", s.attempts, got, s.want)
		}
	}
}

func TestWorker_RunRequiresDependencies(t *testing.T) {
	w := &Worker{}
	if err := w.Run(context.Background()); err != ErrWorkerNotConfigured {
		t.Fatalf("got %v, want ErrWorkerNotConfigured", err)
	}
}
