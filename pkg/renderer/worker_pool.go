package renderer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row    int
	TaskID int // For deterministic ordering
}

// RowResult contains the result from rendering a row
type RowResult struct {
	TaskID int
	Row    int
	Stats  RenderStats
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	group       *errgroup.Group
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	ctx         context.Context // Cancelled once any worker fails
	raymarcher  *Raymarcher
	buffer      *PixelBuffer
	taskQueue   <-chan RowTask
	resultQueue chan<- RowResult
}

// NewWorkerPool creates a worker pool that renders rows of buffer.
// Every row is a separate task, so workers never write the same pixel.
func NewWorkerPool(raymarcher *Raymarcher, buffer *PixelBuffer, numWorkers int) *WorkerPool {
	return NewWorkerPoolWithContext(context.Background(), raymarcher, buffer, numWorkers)
}

// NewWorkerPoolWithContext is like NewWorkerPool, but workers stop taking rows
// once ctx is done. The first worker error also stops the others.
func NewWorkerPoolWithContext(ctx context.Context, raymarcher *Raymarcher, buffer *PixelBuffer, numWorkers int) *WorkerPool {
	numWorkers = max(1, numWorkers)
	group, groupCtx := errgroup.WithContext(ctx)

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, buffer.Height),   // Buffer for every row
		resultQueue: make(chan RowResult, buffer.Height), // Buffer for every result
		numWorkers:  numWorkers,
		group:       group,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			ctx:         groupCtx,
			raymarcher:  raymarcher,
			buffer:      buffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.group.Go(worker.run)
	}
}

// Stop waits for queued tasks to finish and returns the first worker error.
// Rows still queued after a failure are dropped.
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run() error {
	for {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		var task RowTask
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case t, ok := <-w.taskQueue:
			if !ok {
				return nil
			}
			task = t
		}

		stats, err := w.raymarcher.RenderRow(task.Row, w.buffer)
		if err != nil {
			return fmt.Errorf("worker %d, row %d: %w", w.ID, task.Row, err)
		}
		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Row:    task.Row,
			Stats:  stats,
		}
	}
}
