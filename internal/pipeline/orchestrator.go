package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/dgallion1/docrtf/internal/config"
)

// Orchestrator manages the document render pipeline.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	conv    *Converter
	stats   *RenderStats
	metrics *Metrics
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Metrics are registered on reg.
func NewOrchestrator(cfg config.Config, conv *Converter, reg prom.Registerer, log *slog.Logger) *Orchestrator {
	o := &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		conv:  conv,
		stats: NewRenderStats(cfg.JobTTL),
		log:   log,
		cfg:   cfg,
	}
	o.metrics = NewMetrics(reg, func() float64 { return float64(o.QueueDepth()) })
	return o
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.conv, o.stats, o.metrics, o.log)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				if n := o.jobs.Cleanup(); n > 0 {
					o.log.Debug("expired jobs removed", "count", n)
				}
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		o.metrics.IncJob(StatusFailed)
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the rolling render latency aggregate.
func (o *Orchestrator) Stats() StatsSnapshot {
	return o.stats.Snapshot()
}
