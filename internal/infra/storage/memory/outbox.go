package memory

import (
	"context"
	"sync"
	"time"

	appoutbox "staytrack/internal/app/outbox"
)

const (
	stateNew     = "NEW"
	stateClaimed = "CLAIMED"
	stateSent    = "SENT"
	stateFailed  = "FAILED"
)

// OutboxRecord is an event queued for delivery with its retry state.
type OutboxRecord struct {
	ID          string
	Name        string
	Payload     []byte
	OccurredAt  time.Time
	Aggregate   string
	Headers     map[string]string
	State       string
	Attempts    int
	NextAttempt time.Time
	ClaimedBy   string
	LastError   string
}

// Outbox keeps queued events in memory. Delivery state survives only for
// the process lifetime, which matches the tracker's own lifetime.
type Outbox struct {
	mu      sync.Mutex
	records []*OutboxRecord
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, &OutboxRecord{
		ID:          record.ID,
		Name:        record.Name,
		Payload:     record.Payload,
		OccurredAt:  record.OccurredAt,
		Aggregate:   record.Aggregate,
		Headers:     record.Headers,
		State:       stateNew,
		NextAttempt: time.Now().UTC(),
	})
	return nil
}

// Claim hands the oldest due record to a worker, or nil when none is
// ready.
func (o *Outbox) Claim(ctx context.Context, workerID string) (*OutboxRecord, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := time.Now().UTC()
	for _, rec := range o.records {
		if rec.State != stateNew && rec.State != stateFailed {
			continue
		}
		if rec.NextAttempt.After(now) {
			continue
		}
		rec.State = stateClaimed
		rec.ClaimedBy = workerID
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (o *Outbox) MarkSent(ctx context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if rec := o.find(id); rec != nil {
		rec.State = stateSent
	}
	return nil
}

func (o *Outbox) MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if rec := o.find(id); rec != nil {
		rec.State = stateFailed
		rec.Attempts++
		rec.NextAttempt = next
		rec.LastError = errMsg
	}
	return nil
}

// Pending counts records not yet delivered.
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, rec := range o.records {
		if rec.State != stateSent {
			n++
		}
	}
	return n
}

func (o *Outbox) find(id string) *OutboxRecord {
	for _, rec := range o.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

var _ appoutbox.Outbox = (*Outbox)(nil)
