package subm

import (
	"context"

	"github.com/google/uuid"
)

// QueueMsg is one pending written-submission evaluation job.
type QueueMsg struct {
	SubmID uuid.UUID
	// Handle acknowledges the message on the backing queue. Empty for
	// in-process queues.
	Handle string
}

// Queue decouples submission intake from the evaluation workers. The
// submission record itself is persisted before enqueueing, so a lost
// message can be re-driven by re-enqueueing the submission id.
type Queue interface {
	Enqueue(ctx context.Context, submId uuid.UUID) error
	// Receive blocks until at least one message is available or ctx is
	// done. It may return fewer messages than are pending.
	Receive(ctx context.Context) ([]QueueMsg, error)
	Ack(ctx context.Context, msg QueueMsg) error
}

// ChanQueue is an in-process queue for tests and single-node deployments.
type ChanQueue struct {
	ch chan QueueMsg
}

func NewChanQueue(size int) *ChanQueue {
	return &ChanQueue{ch: make(chan QueueMsg, size)}
}

func (q *ChanQueue) Enqueue(ctx context.Context, submId uuid.UUID) error {
	select {
	case q.ch <- QueueMsg{SubmID: submId}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ChanQueue) Receive(ctx context.Context) ([]QueueMsg, error) {
	select {
	case msg := <-q.ch:
		return []QueueMsg{msg}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *ChanQueue) Ack(ctx context.Context, msg QueueMsg) error {
	return nil
}
