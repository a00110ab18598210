package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Worker processes a single document job.
type Worker struct {
	conv    *Converter
	stats   *RenderStats
	metrics *Metrics
	log     *slog.Logger
}

func NewWorker(conv *Converter, stats *RenderStats, metrics *Metrics, log *slog.Logger) *Worker {
	return &Worker{
		conv:    conv,
		stats:   stats,
		metrics: metrics,
		log:     log,
	}
}

// Process runs parse and render for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	start := time.Now()
	tree, err := w.conv.Parse(job.FileData(), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		w.fail(job, "parsing", err.Error())
		return
	}
	w.metrics.ObservePhase("parse", time.Since(start))
	if job.Title != "" {
		tree.Title = job.Title
	}
	job.SetNodes(CountNodes(tree))

	if err := ctx.Err(); err != nil {
		w.fail(job, "parsing", err.Error())
		return
	}

	// Phase 2: Render
	job.SetStatus(StatusRendering, "rendering")
	warnings := 0
	rlog := slog.New(&warnRecorder{
		Handler: log.Handler(),
		onWarn: func(msg string) {
			warnings++
			job.AddWarning(msg)
		},
	})

	start = time.Now()
	var buf bytes.Buffer
	if err := w.conv.Render(&buf, tree, job.Language, rlog); err != nil {
		log.Error("render failed", "error", err)
		w.fail(job, "rendering", err.Error())
		return
	}
	elapsed := time.Since(start)

	job.SetResult(buf.Bytes(), elapsed)
	w.stats.Record(job.Filename, elapsed, buf.Len())
	w.metrics.ObservePhase("render", elapsed)
	w.metrics.ObserveOutput(buf.Len())
	w.metrics.AddWarnings(warnings)

	log.Info("render complete", "bytes", buf.Len(), "warnings", warnings, "elapsed_ms", elapsed.Milliseconds())
	w.metrics.IncJob(StatusCompleted)
	job.SetStatus(StatusCompleted, "done")
}

func (w *Worker) fail(job *Job, phase, msg string) {
	job.AddError(fmt.Sprintf("%s: %s", phase, msg))
	w.metrics.IncJob(StatusFailed)
	job.SetStatus(StatusFailed, phase)
}
