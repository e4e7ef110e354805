package subm

import (
	"context"
	"sync"
	"time"

	"github.com/skolapp/backend/logger"
)

// RunWorkers consumes the evaluation queue until ctx is cancelled, running
// at most workers evaluations concurrently. Messages are acknowledged
// whether processing succeeded or not; a failed submission is marked failed
// rather than redelivered forever.
func (s *SubmSrvc) RunWorkers(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	log := logger.FromContext(ctx)
	log.Info("starting evaluation workers", "workers", workers)

	throttle := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for {
		msgs, err := s.queue.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Error("failed to receive evaluation jobs", "error", err)
			time.Sleep(1 * time.Second)
			continue
		}
		for _, msg := range msgs {
			throttle <- struct{}{}
			wg.Add(1)
			go func(msg QueueMsg) {
				defer wg.Done()
				defer func() { <-throttle }()

				if err := s.Process(ctx, msg.SubmID); err != nil {
					log.Error("failed to process submission",
						"subm_id", msg.SubmID, "error", err)
				}
				if err := s.queue.Ack(ctx, msg); err != nil {
					log.Error("failed to ack evaluation job",
						"subm_id", msg.SubmID, "error", err)
				}
			}(msg)
		}
	}
	wg.Wait()
	log.Info("evaluation workers stopped")
}
