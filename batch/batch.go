// Package batch runs many independent generator invocations concurrently.
//
// Each job builds its own random engine from its own configuration, so the
// output of a job does not depend on scheduling or on the other jobs.
// Results come back in job order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/lineart"
	"github.com/gogpu/lineart/internal/parallel"
)

// ErrPanic wraps a panic raised by a job.
var ErrPanic = errors.New("batch: job panicked")

// Job is one generator invocation.
type Job struct {
	Name string
	Run  func(ctx context.Context) (lineart.PolylineSet, error)
}

// Generator adapts a generator function and its configuration to a Job.
// The job's context is not passed to gen; cancellation takes effect
// between jobs.
func Generator[C any](name string, cfg C, gen func(C, ...lineart.Option) (lineart.PolylineSet, error), opts ...lineart.Option) Job {
	return Job{
		Name: name,
		Run: func(context.Context) (lineart.PolylineSet, error) {
			return gen(cfg, opts...)
		},
	}
}

// Result is the outcome of one job.
type Result struct {
	Name    string
	Set     lineart.PolylineSet
	Err     error
	Elapsed time.Duration
	// Skipped is set when the batch was canceled before the job started.
	Skipped bool
}

type options struct {
	workers  int
	tracer   trace.Tracer
	progress lineart.Progress
}

// Option configures Run.
type Option func(*options)

// WithWorkers sets the number of concurrent jobs. Values < 1 mean
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithTracer records one span per job with t instead of the global
// OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithProgress reports the fraction of finished jobs.
func WithProgress(p lineart.Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// Run executes jobs and returns one Result per job, in order. Job errors
// and panics are reported in their Result; Run itself fails only when ctx
// is done before every job started, in which case the unstarted jobs are
// marked Skipped.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer("github.com/gogpu/lineart/batch")
	}

	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i] = Result{Name: j.Name, Skipped: true}
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	finished := make(chan struct{}, len(jobs))
	reported := make(chan struct{})
	go func() {
		defer close(reported)
		n := 0
		for range finished {
			n++
			lineart.ReportProgress(o.progress, float64(n)/float64(len(jobs)))
		}
	}()

	start := time.Now()
	err := pool.Do(ctx, len(jobs), func(i int) {
		results[i] = runJob(ctx, o.tracer, jobs[i])
		finished <- struct{}{}
	})
	close(finished)
	<-reported

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	lineart.Logger().Info("batch: done",
		slog.Int("jobs", len(jobs)),
		slog.Int("failed", failed),
		slog.Int("workers", pool.Workers()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return results, err
}

func runJob(ctx context.Context, tracer trace.Tracer, job Job) (res Result) {
	ctx, span := tracer.Start(ctx, "batch.job", trace.WithAttributes(attribute.String("job", job.Name)))
	start := time.Now()
	res.Name = job.Name
	defer func() {
		if r := recover(); r != nil {
			res.Set = nil
			res.Err = fmt.Errorf("%w: %s: %v", ErrPanic, job.Name, r)
			lineart.Logger().Error("batch: job panicked",
				slog.String("job", job.Name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("polylines", len(res.Set)),
				attribute.Int("points", res.Set.PointCount()),
			)
		}
		span.End()
	}()

	if job.Run == nil {
		res.Err = fmt.Errorf("batch: job %q has no Run function", job.Name)
		return res
	}
	res.Set, res.Err = job.Run(ctx)
	return res
}
