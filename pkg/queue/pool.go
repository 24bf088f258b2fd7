package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// WorkerPool runs the polling workers and the orphan recovery loop for one
// replica.
type WorkerPool struct {
	client    *ent.Client
	cfg       *config.QueueConfig
	executor  *RequestExecutor
	recoverer *OrphanRecoverer
	podID     string
	logger    *slog.Logger

	pollCancel context.CancelFunc
	runCancel  context.CancelFunc
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool. The pod ID identifies this replica in claim
// and heartbeat rows.
func NewWorkerPool(client *ent.Client, cfg *config.QueueConfig, executor *RequestExecutor, recoverer *OrphanRecoverer) *WorkerPool {
	host, _ := os.Hostname()
	if host == "" {
		host = "pod"
	}
	return &WorkerPool{
		client:    client,
		cfg:       cfg,
		executor:  executor,
		recoverer: recoverer,
		podID:     fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		logger:    slog.With("component", "worker_pool"),
	}
}

// PodID returns this replica's claim identity.
func (p *WorkerPool) PodID() string {
	return p.podID
}

// Start launches the workers and the orphan recovery loop. An initial orphan
// sweep runs before polling begins so work abandoned by a crashed replica is
// re-queued promptly.
func (p *WorkerPool) Start(ctx context.Context) {
	pollCtx, pollCancel := context.WithCancel(ctx)
	runCtx, runCancel := context.WithCancel(context.WithoutCancel(ctx))
	p.pollCancel = pollCancel
	p.runCancel = runCancel

	if err := p.recoverer.RecoverOnce(ctx); err != nil {
		p.logger.Error("Startup orphan sweep failed", "error", err)
	}

	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := &worker{
			id:       i,
			client:   p.client,
			cfg:      p.cfg,
			executor: p.executor,
			podID:    p.podID,
			logger:   p.logger.With("worker", i),
		}
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run(pollCtx, runCtx)
		}()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.recoverer.Run(pollCtx)
	}()

	p.logger.Info("Worker pool started", "workers", p.cfg.WorkerCount, "pod_id", p.podID)
}

// Stop shuts the pool down gracefully: polling stops immediately, in-flight
// requests get up to GracefulShutdownTimeout to finish, then their contexts
// are cancelled.
func (p *WorkerPool) Stop() {
	p.logger.Info("Worker pool stopping")
	p.pollCancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(p.cfg.GracefulShutdownTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		p.logger.Warn("Graceful shutdown timeout reached, cancelling in-flight requests")
	}
	p.runCancel()
	<-done
	p.logger.Info("Worker pool stopped")
}
