// Package meshing turns box models into vertex arrays on a pool of worker
// goroutines, leaving only the GL upload to the render thread.
package meshing

import (
	"context"
	"sync"

	"restaurant-gl/pkg/boxmodel"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Name  string
	Model *boxmodel.Model
	// Result channel - will be sent the result when done
	ResultChan chan<- MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Name     string
	Vertices []float32
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking queues a job, giving up when ctx or the pool is done.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := MeshResult{Name: job.Name, Vertices: job.Model.Vertices()}
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs are
// dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int { return p.workers }

// BuildAll meshes every model on the pool and waits for all of them.
func BuildAll(ctx context.Context, p *WorkerPool, models map[string]*boxmodel.Model) (map[string][]float32, error) {
	results := make(chan MeshResult, len(models))
	for name, m := range models {
		if err := p.SubmitJobBlocking(ctx, MeshJob{Name: name, Model: m, ResultChan: results}); err != nil {
			return nil, err
		}
	}

	out := make(map[string][]float32, len(models))
	for len(out) < len(models) {
		select {
		case r := <-results:
			out[r.Name] = r.Vertices
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, p.ctx.Err()
		}
	}
	return out, nil
}
