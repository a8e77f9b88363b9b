package textview

import (
	"context"
	"sync"
)

// Poster accepts tasks for a cooperative scheduler. Tasks run one at a
// time, in posting order, on the scheduler's own goroutine.
type Poster interface {
	Post(task func())
}

// Queue is a cooperative task queue. Post may be called from any goroutine;
// tasks run on the goroutine calling RunPending or Run.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post enqueues task for the next turn.
func (q *Queue) Post(task func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunPending runs one turn: the tasks queued before the call. Tasks posted
// while the turn runs wait for the next turn. It returns the number of
// tasks run.
func (q *Queue) RunPending() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Run runs turns as tasks arrive until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.RunPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}
