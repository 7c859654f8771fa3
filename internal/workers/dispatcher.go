package workers

import (
	"sync"

	"gigflow_backend/internal/logger"
)

// Task is a unit of post-commit side effect work.
type Task struct {
	Name string
	Run  func() error
}

// Dispatcher executes side-effect tasks on a background goroutine in
// submission order. Task failures are logged, never propagated; the
// state change that queued the task has already committed.
type Dispatcher struct {
	queue chan Task

	mu      sync.RWMutex
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

func NewDispatcher(queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Dispatcher{
		queue: make(chan Task, queueSize),
		done:  make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		go d.run()
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for task := range d.queue {
		err := task.Run()
		logger.WorkerLog("dispatcher", task.Name, err)
	}
}

// Submit queues a task. When the queue is full or the dispatcher has
// stopped the task is dropped with a warning; side effects are best
// effort.
func (d *Dispatcher) Submit(task Task) {
	// The read lock keeps Stop from closing the queue mid-send.
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		logger.Warn("dispatcher stopped, task dropped", "task", task.Name)
		return
	}

	select {
	case d.queue <- task:
	default:
		logger.Warn("dispatcher queue full, task dropped", "task", task.Name)
	}
}

// Stop closes the queue and waits for queued tasks to drain.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()

		close(d.queue)
		<-d.done
	})
}
